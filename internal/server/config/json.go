package config

import (
	"encoding/json"
	"os"

	"github.com/avolkovs/sitekeeper/internal/flagx"
	"github.com/avolkovs/sitekeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// Every field is a pointer so a partial config file overlays only the keys
// it names; absent keys keep whatever value an earlier layer set. This
// matters for the lockout fields, where a zeroed threshold would lock
// accounts on the first failed login.
type JsonConfig struct {
	EndpointAddr          *string         `json:"endpoint_addr"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	LockoutThreshold      *int            `json:"lockout_threshold"`
	LockoutDuration       *timex.Duration `json:"lockout_duration"`
	AdminEmail            *string         `json:"admin_email"`
	AdminPassword         *string         `json:"admin_password"`
	S3RootUser            *string         `json:"s3_root_user"`
	S3RootPassword        *string         `json:"s3_root_password"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	RedisURL              *string         `json:"redis_url"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	applyJsonFile(config, jsonConfigFile)
}

// applyJsonFile overlays the keys present in the JSON file at path onto
// config. If the file cannot be read or contains invalid JSON, the function
// panics.
func applyJsonFile(config *Config, path string) {
	c := &JsonConfig{}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(c.EndpointAddr, &config.EndpointAddr)
	setString(c.DatabaseDSN, &config.DatabaseDSN)
	setString(c.SecretKey, &config.SecretKey)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.LockoutThreshold != nil {
		config.LockoutThreshold = *c.LockoutThreshold
	}
	if c.LockoutDuration != nil {
		config.LockoutDuration = c.LockoutDuration.Duration
	}
	setString(c.AdminEmail, &config.AdminEmail)
	setString(c.AdminPassword, &config.AdminPassword)
	setString(c.S3RootUser, &config.S3RootUser)
	setString(c.S3RootPassword, &config.S3RootPassword)
	setString(c.S3Bucket, &config.S3Bucket)
	setString(c.S3Region, &config.S3Region)
	setString(c.S3BaseEndpoint, &config.S3BaseEndpoint)
	setString(c.RedisURL, &config.RedisURL)
}
