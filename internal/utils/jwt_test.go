package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()

	m, err := NewTokenManager("secret-key", "HS256", "test-issuer", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	return m
}

func TestNewTokenManager_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		signKey   string
		algorithm string
		issuer    string
		lifetime  time.Duration
	}{
		{"empty sign key", "", "HS256", "iss", time.Hour},
		{"empty issuer", "key", "HS256", "", time.Hour},
		{"zero lifetime", "key", "HS256", "iss", 0},
		{"unknown algorithm", "key", "HS666", "iss", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenManager(tt.signKey, tt.algorithm, tt.issuer, tt.lifetime)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestTokenManager_Issue(t *testing.T) {
	m := newTestTokenManager(t)
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

	token, err := m.Issue(123, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %s", claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", now.Add(time.Hour), claims.ExpiresAt.Time)
	}
}

func TestTokenManager_ValidateRoundTrip(t *testing.T) {
	m := newTestTokenManager(t)
	now := time.Now()

	token, err := m.Issue(456, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	userID, err := m.Validate(token.SignedString, now)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if userID != 456 {
		t.Errorf("expected userID 456, got %d", userID)
	}
}

func TestTokenManager_ValidateExpired(t *testing.T) {
	m := newTestTokenManager(t)
	now := time.Now()

	token, err := m.Issue(1, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Validate from a point in time after the token's lifetime has elapsed.
	_, err = m.Validate(token.SignedString, now.Add(2*time.Hour))
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestTokenManager_ValidateWrongKey(t *testing.T) {
	m := newTestTokenManager(t)
	other, err := NewTokenManager("another-key", "HS256", "test-issuer", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	now := time.Now()
	token, err := other.Issue(7, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err = m.Validate(token.SignedString, now)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestTokenManager_ValidateWrongIssuer(t *testing.T) {
	m := newTestTokenManager(t)
	other, err := NewTokenManager("secret-key", "HS256", "someone-else", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	now := time.Now()
	token, err := other.Issue(7, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err = m.Validate(token.SignedString, now)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestTokenManager_ValidateGarbage(t *testing.T) {
	m := newTestTokenManager(t)

	_, err := m.Validate("not.a.token", time.Now())
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestTokenManager_ValidateMissingSubject(t *testing.T) {
	m := newTestTokenManager(t)
	now := time.Now()

	// A token signed with the right key and issuer but no subject claim.
	claims := &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err = m.Validate(raw, now)
	if !errors.Is(err, ErrTokenMissingSubject) {
		t.Errorf("expected ErrTokenMissingSubject, got: %v", err)
	}
}

func TestTokenManager_Lifetime(t *testing.T) {
	m := newTestTokenManager(t)

	if m.Lifetime() != time.Hour {
		t.Errorf("expected lifetime %v, got %v", time.Hour, m.Lifetime())
	}
}
