package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued session token.
//
// SignedString holds the compact serialized form ready to be transported in
// an http-only cookie. UserID is the subject the token was issued for. The
// embedded [jwt.Token] keeps the parsed claims available for inspection.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the identifier the token was issued for.
	UserID int64 `json:"-"`
}
