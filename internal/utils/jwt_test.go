package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAdminTokenClaims(t *testing.T) {
	const secret = "testsecret"
	tok, err := NewAdminToken(secret, 7, "admin", 24)
	if err != nil {
		t.Fatalf("NewAdminToken() error = %v", err)
	}
	if tok.Token == "" {
		t.Fatal("NewAdminToken() returned empty token")
	}
	if remaining := time.Until(tok.Exp); remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Errorf("token expiry %v not ~24h ahead", tok.Exp)
	}

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse issued token: err=%v valid=%v", err, parsed != nil && parsed.Valid)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims have type %T, want jwt.MapClaims", parsed.Claims)
	}
	if got := claims["username"]; got != "admin" {
		t.Errorf("username claim = %v, want %q", got, "admin")
	}
	if got := claims["role"]; got != "ADMIN" {
		t.Errorf("role claim = %v, want %q", got, "ADMIN")
	}
	if got, ok := claims["sub"].(float64); !ok || uint64(got) != 7 {
		t.Errorf("sub claim = %v, want 7", claims["sub"])
	}
}

func TestNewAdminTokenWrongSecret(t *testing.T) {
	tok, err := NewAdminToken("right", 1, "admin", 1)
	if err != nil {
		t.Fatalf("NewAdminToken() error = %v", err)
	}
	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	if err == nil && parsed.Valid {
		t.Error("token verified with the wrong secret")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !VerifyPassword(hash, "admin123") {
		t.Error("VerifyPassword() = false for the correct password")
	}
	if VerifyPassword(hash, "admin124") {
		t.Error("VerifyPassword() = true for a wrong password")
	}
}

func TestHashPasswordOutOfRangeCost(t *testing.T) {
	// bcrypt rejects costs above 31; the helper normalizes instead so the
	// admin seed survives a bad BCRYPT_COST.
	hash, err := HashPassword("admin123", 99)
	if err != nil {
		t.Fatalf("HashPassword(cost=99) error = %v", err)
	}
	if !VerifyPassword(hash, "admin123") {
		t.Error("VerifyPassword() = false after cost normalization")
	}
}
