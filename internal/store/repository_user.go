package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user lifecycle against the "users" table and owns the cascade
// to the "salary" table: user+salary creation and deletion each run inside a
// single transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and its default salary record as one
// atomic unit, returning the fully populated [models.User] with
// server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The default salary follows the user's creation date: amount comes from the
// schema default, next raise date is creation date plus
// [models.DefaultRaiseAfterDays].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → *[UniqueViolationError] naming
//     the conflicting field, resolved from the violated constraint.
//   - Any other error reported at row scan → wrapped [ErrScanningRow]; the
//     transaction is rolled back and neither record exists.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx, createUser,
		user.Email,
		user.PhoneNumber,
		user.FirstName,
		user.LastName,
		nullableDate(user.DateOfBirth),
		user.PasswordHash,
	)

	created, err := scanUser(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolation(err)
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("error: user insert failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	nextRaise := models.DateOf(created.CreatedAt).AddDays(models.DefaultRaiseAfterDays)
	salaryRow := tx.QueryRowContext(ctx, createSalary, created.ID, nextRaise.Time)

	if _, err := scanSalary(salaryRow); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Int64("user_id", created.ID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: default salary insert failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other error reported at row scan → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Int64("user_id", userID).
			Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// FindUserBy retrieves the first user matching all of the given exact-match
// filters (column name → value), e.g. {"email": "a@x.com"}.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
func (r *userRepository) FindUserBy(ctx context.Context, filters map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserBy(filters)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: cannot build filter query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).
			Str("func", "*userRepository.FindUserBy").
			Msg("error: filtered user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUser applies the given fields (column name → value) to a single user
// record and returns the number of updated rows. Only the provided fields
// are touched; updated_at is bumped as part of the same statement.
//
// Uniqueness is deliberately not re-validated here — callers perform the
// pre-check. A lost race still hits the unique index and surfaces as an
// execution error.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return 0, ErrNoFieldsToUpdate
	}

	query, args, err := buildUpdateUser(userID, fields)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: cannot build update query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", userID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: user update failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updatedCount, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: cannot get rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updatedCount, nil
}

// DeleteUser removes the user and its salary record inside one transaction.
// The salary row is deleted explicitly before the user row, so the cascade
// never depends on relationship metadata. Returns false when no user with
// the given ID exists; the transaction is still committed in that case.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: cannot begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, deleteSalaryByUserID, userID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Int64("user_id", userID).
			Msg("error: salary delete failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteUserByID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Int64("user_id", userID).
			Msg("error: user delete failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deletedCount, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: cannot get rows affected")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: cannot commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return deletedCount > 0, nil
}

// uniqueViolation resolves a PostgreSQL unique_violation into a
// *UniqueViolationError carrying the offending field name. The field is
// derived from the violated constraint name (e.g. "users_email_key").
func uniqueViolation(err error) error {
	constraint := postgresConstraint(err)

	switch {
	case strings.Contains(constraint, "phone_number"):
		return &UniqueViolationError{Field: "phone_number"}
	case strings.Contains(constraint, "email"):
		return &UniqueViolationError{Field: "email"}
	default:
		return &UniqueViolationError{}
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var phoneNumber, firstName, lastName sql.NullString
	var dateOfBirth sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&phoneNumber,
		&firstName,
		&lastName,
		&dateOfBirth,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if phoneNumber.Valid {
		user.PhoneNumber = &phoneNumber.String
	}
	if firstName.Valid {
		user.FirstName = &firstName.String
	}
	if lastName.Valid {
		user.LastName = &lastName.String
	}
	if dateOfBirth.Valid {
		dob := models.DateOf(dateOfBirth.Time)
		user.DateOfBirth = &dob
	}

	return user, nil
}

func scanSalary(row rowScanner) (models.Salary, error) {
	var salary models.Salary
	var nextRaiseDate sql.NullTime

	err := row.Scan(
		&salary.ID,
		&salary.Amount,
		&nextRaiseDate,
		&salary.UserID,
		&salary.CreatedAt,
		&salary.UpdatedAt,
	)
	if err != nil {
		return models.Salary{}, err
	}

	if nextRaiseDate.Valid {
		nrd := models.DateOf(nextRaiseDate.Time)
		salary.NextRaiseDate = &nrd
	}

	return salary, nil
}

// nullableDate converts an optional Date into a driver-friendly argument.
func nullableDate(d *models.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}
