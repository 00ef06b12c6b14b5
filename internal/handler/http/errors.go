// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from the request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoTokenCookie is returned when the incoming request carries no
	// session cookie at all.
	ErrNoTokenCookie = errors.New("token not found")

	// ErrEmptyToken is returned when the session cookie is present but its
	// value is an empty string.
	ErrEmptyToken = errors.New("empty token in session cookie")
)
