package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)

	raw, err := tokens.Generate(&User{ID: "u-1", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != RoleAdmin || claims.Subject != "u-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokensRejectEmptyUser(t *testing.T) {
	if _, err := NewTokens("s3cret", 0).Generate(&User{}); err == nil {
		t.Fatal("expected error for user without id")
	}
}

func TestTokensExpire(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens := NewTokens("s3cret", time.Hour)
	tokens.now = func() time.Time { return issued }

	raw, err := tokens.Generate(&User{ID: "u-1", Role: RoleCustomer})
	if err != nil {
		t.Fatal(err)
	}

	tokens.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := tokens.Validate(raw); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	tokens.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := tokens.Validate(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokensRejectForeignSignatures(t *testing.T) {
	raw, err := NewTokens("other", 0).Generate(&User{ID: "u-1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokens("s3cret", 0).Validate(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokens("s3cret", 0).Validate(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}
