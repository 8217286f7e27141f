package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	adminID := "admin-123"
	now := time.Now()

	tok, err := GenerateToken(adminID, secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotID, exp, err := ParseToken(tok, secret, now)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if gotID != adminID {
		t.Fatalf("adminID mismatch: got %q want %q", gotID, adminID)
	}
	if exp.Unix() != now.Add(time.Hour).Unix() {
		t.Fatalf("expiry mismatch: got %v want %v", exp, now.Add(time.Hour))
	}
}

func TestParseToken_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	now := time.Now()
	ttl := 24 * time.Hour

	tok, err := GenerateToken("u1", secret, ttl, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// T-1: still valid
	if _, _, err := ParseToken(tok, secret, now.Add(ttl-time.Second)); err != nil {
		t.Fatalf("expected token valid at T-1, got %v", err)
	}

	// T+1: expired, and distinguishable as such
	_, _, err = ParseToken(tok, secret, now.Add(ttl+time.Second))
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired at T+1, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, _, err = ParseToken(tok, []byte("wrong-secret"), now)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_WrongSecretNeverExpired(t *testing.T) {
	t.Parallel()

	// An expired token signed with a different secret must still surface as
	// malformed, not expired.
	now := time.Now()
	tok, err := GenerateToken("u3", []byte("other-secret"), -time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, _, err = ParseToken(tok, []byte("verifier-secret"), now)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, _, err := ParseToken("not.a.jwt", []byte("k"), time.Now())
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}
