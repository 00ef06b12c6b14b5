package store

import (
	"context"

	"github.com/mkorolev/salary-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence interface for user identity records.
// It owns the cascading relationship to the salary record: creation and
// deletion of a user include its salary within the same transaction.
type UserRepository interface {
	// CreateUser persists a new user together with its default salary record
	// as a single atomic unit. A uniqueness conflict is reported as a
	// *UniqueViolationError naming the offending field.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserBy returns the first user matching all of the exact-match
	// filters (column name → value) or ErrUserNotFound.
	FindUserBy(ctx context.Context, filters map[string]any) (models.User, error)

	// UpdateUser applies the given fields (column name → value) to the user
	// record and returns the number of updated rows. Uniqueness is not
	// re-validated here; callers are responsible for pre-checks.
	UpdateUser(ctx context.Context, userID int64, fields map[string]any) (int64, error)

	// DeleteUser removes the user and its salary record in one transaction.
	// Returns false when no such user exists.
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// SalaryRepository is the read-side persistence interface for salary records.
// Salary rows are created only by [UserRepository.CreateUser].
type SalaryRepository interface {
	// FindSalaryByUserID returns the salary owned by the given user or
	// ErrSalaryNotFound.
	FindSalaryByUserID(ctx context.Context, userID int64) (models.Salary, error)
}
