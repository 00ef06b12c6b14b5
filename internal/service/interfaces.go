package service

import (
	"context"

	"github.com/mkorolev/salary-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles registration, credential verification and the session
// token lifecycle.
type AuthService interface {
	// RegisterUser hashes the password and creates the user together with
	// its default salary record.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the email/password pair. Any failure is reported as
	// ErrInvalidCredentials without revealing which check failed.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the subject
	// user ID.
	ParseToken(ctx context.Context, tokenString string) (int64, error)
}

// UserService handles profile reads and the partial-update/delete workflows.
type UserService interface {
	// GetUser returns the user with the given ID.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial update to the user and returns the
	// reloaded record.
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes the user and, by cascade, its salary record.
	DeleteUser(ctx context.Context, userID int64) error
}

// SalaryService exposes the per-user salary record.
type SalaryService interface {
	// GetSalaryByUserID returns the salary owned by the given user.
	GetSalaryByUserID(ctx context.Context, userID int64) (models.Salary, error)
}
