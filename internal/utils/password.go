package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher performs one-way salted password hashing with bcrypt.
// The work factor is fixed at construction time; the hasher is immutable
// and safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a PasswordHasher with the given bcrypt cost.
// A cost outside the range supported by bcrypt is replaced with the
// library default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &PasswordHasher{cost: cost}
}

// Hash computes a salted bcrypt hash of the given password. Each call
// produces a different hash for the same input because bcrypt embeds a
// random salt into the output.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plain matches the given bcrypt hash.
// A malformed hash is never an error condition: it simply yields false.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
