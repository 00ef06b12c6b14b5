package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/models"
)

// userService is the concrete implementation of UserService. It orchestrates
// the partial-update and deletion workflows on top of the UserRepository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the user with the given ID or store.ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// UpdateUser applies a partial update to the user record.
//
// Workflow:
//  1. Load the existing user (store.ErrUserNotFound if absent).
//  2. Reject an empty payload with ErrNoFieldsProvided.
//  3. For email/phone values that differ from the current ones, pre-check
//     uniqueness against other users and reject with a field-specific
//     *store.UniqueViolationError when taken.
//  4. Apply the update, then reload and return the updated record.
//
// The pre-check and the write are not atomic. A race lost between the check
// and the write still hits the unique index and surfaces as a storage error.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.IsEmpty() {
		return models.User{}, ErrNoFieldsProvided
	}

	if req.Email != nil && *req.Email != existing.Email {
		if err := s.checkFieldIsFree(ctx, "email", *req.Email); err != nil {
			return models.User{}, err
		}
	}

	if req.PhoneNumber != nil && !equalPtr(req.PhoneNumber, existing.PhoneNumber) {
		if err := s.checkFieldIsFree(ctx, "phone_number", *req.PhoneNumber); err != nil {
			return models.User{}, err
		}
	}

	fields := updateFields(req)

	updatedCount, err := s.userRepository.UpdateUser(ctx, userID, fields)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}
	if updatedCount == 0 {
		return models.User{}, store.ErrUserNotFound
	}

	updated, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reload after update failed")
		return models.User{}, fmt.Errorf("reload after update failed: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user together with its salary record.
// Returns store.ErrUserNotFound when no such user exists.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	deleted, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}
	if !deleted {
		return store.ErrUserNotFound
	}

	return nil
}

// checkFieldIsFree reports a *store.UniqueViolationError when another user
// already holds the given value for the field.
func (s *userService) checkFieldIsFree(ctx context.Context, field, value string) error {
	_, err := s.userRepository.FindUserBy(ctx, map[string]any{field: value})
	if err == nil {
		return &store.UniqueViolationError{Field: field}
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return nil
	}

	return fmt.Errorf("uniqueness pre-check failed: %w", err)
}

// updateFields converts the present payload fields into the column map
// consumed by the repository. Absent fields are left out entirely.
func updateFields(req models.UpdateUserRequest) map[string]any {
	fields := make(map[string]any, 5)

	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.DateOfBirth != nil {
		fields["date_of_birth"] = req.DateOfBirth.Time
	}

	return fields
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
