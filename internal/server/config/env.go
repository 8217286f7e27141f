package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset or fail to parse leave the current value alone, so a .env file
// (loaded by the entrypoint) only needs the keys it wants to change.
func parseEnv(config *Config) {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("SECRET_KEY", &config.SecretKey)
	setDuration("TOKEN_TTL", &config.TokenValidityDuration)
	setInt("LOCKOUT_THRESHOLD", &config.LockoutThreshold)
	setDuration("LOCKOUT_DURATION", &config.LockoutDuration)
	setString("ADMIN_EMAIL", &config.AdminEmail)
	setString("ADMIN_PASSWORD", &config.AdminPassword)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	setString("REDIS_URL", &config.RedisURL)
}
