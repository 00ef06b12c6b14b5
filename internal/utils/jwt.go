package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkorolev/salary-service/models"
)

// TokenManager issues and validates signed session tokens.
//
// Signing key, algorithm and lifetime are fixed at construction time from
// process-wide configuration and never change afterwards, so a single
// TokenManager is safe for concurrent use. Validation is a pure function of
// (token, now, key): it performs no I/O and mutates nothing.
type TokenManager struct {
	signKey  []byte
	method   jwt.SigningMethod
	issuer   string
	lifetime time.Duration
}

// NewTokenManager constructs a TokenManager for the given signing parameters.
//
// algorithm is a JWT signing method name (e.g. "HS256") resolved via
// [jwt.GetSigningMethod]. Returns an error if any parameter is empty or the
// algorithm name is unknown.
func NewTokenManager(signKey, algorithm, issuer string, lifetime time.Duration) (*TokenManager, error) {
	if signKey == "" || issuer == "" || lifetime <= 0 {
		return nil, errors.New("invalid params for creating token manager")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %q", algorithm)
	}

	return &TokenManager{
		signKey:  []byte(signKey),
		method:   method,
		issuer:   issuer,
		lifetime: lifetime,
	}, nil
}

// Issue produces a signed session token for the given user.
//
// The token carries the following standard claims:
//   - Issuer    (iss): the configured issuer name
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus the configured lifetime
func (m *TokenManager) Issue(userID int64, now time.Time) (models.Token, error) {
	claims := &jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(m.method, claims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// Validate verifies the raw token string against the configured key,
// algorithm and issuer, checking expiration against the supplied now.
//
// On success it returns the subject user ID. Failures are normalised to the
// package sentinels:
//   - [ErrTokenExpired] — the expiration claim is not after now;
//   - [ErrTokenMissingSubject] — the token verifies but has no "sub" claim;
//   - [ErrTokenInvalid] — any other signature/format/claim failure.
func (m *TokenManager) Validate(tokenString string, now time.Time) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return 0, ErrTokenMissingSubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMissingSubject
	}

	return userID, nil
}

// Lifetime returns the configured token lifetime.
func (m *TokenManager) Lifetime() time.Duration {
	return m.lifetime
}
