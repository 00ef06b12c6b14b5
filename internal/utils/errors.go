package utils

import "errors"

// Sentinel errors returned by [TokenManager.Validate]. Callers should use
// [errors.Is] to match against these values; all of them must be surfaced
// to clients as a generic unauthorized outcome.
var (
	// ErrTokenInvalid is returned when the token is malformed or its
	// signature does not verify.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned when the token's expiration timestamp is
	// not in the future.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMissingSubject is returned when a structurally valid token
	// carries no "sub" claim, so no user can be resolved from it.
	ErrTokenMissingSubject = errors.New("token has no subject claim")
)
