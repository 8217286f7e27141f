// Package auth issues and verifies the bearer tokens used by the admin API.
// Tokens are HS256 JWTs carrying the admin ID and an expiry; validity is a
// pure function of the token string, the shared secret and the clock.
package auth

import (
	"errors"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the admin ID.
type Claims struct {
	jwt.RegisteredClaims
	AdminID string `json:"adminId"`
}

// GenerateToken mints a signed token for adminID expiring at now+ttl.
func GenerateToken(adminID string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AdminID: adminID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns the
// embedded admin ID and expiry.
//
// The two failure kinds are distinguishable by the caller:
//   - common.ErrTokenExpired: signature valid, expiry in the past
//   - common.ErrInvalidToken: structurally invalid or signature mismatch
func ParseToken(tokenString string, secretKey []byte, now time.Time) (string, time.Time, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", time.Time{}, common.ErrTokenExpired
		}
		return "", time.Time{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return "", time.Time{}, common.ErrInvalidToken
	}

	return claims.AdminID, claims.ExpiresAt.Time, nil
}
