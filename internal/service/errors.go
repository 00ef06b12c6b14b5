package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// data the operation cannot proceed without.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure. It is shared
	// between the unknown-email and wrong-password cases on purpose, so the
	// response never reveals which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoFieldsProvided is returned when a partial update carries no
	// fields at all.
	ErrNoFieldsProvided = errors.New("no fields provided for update")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
