package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSalaryNotFound is returned when a salary lookup by user ID
	// produces an empty result set.
	ErrSalaryNotFound = errors.New("no salary record was found")

	// ErrNoFieldsToUpdate is returned when an UPDATE is attempted with an
	// empty field set.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// UniqueViolationError reports a violated uniqueness constraint together with
// the offending field name ("email" or "phone_number"), so the transport
// layer can produce a field-specific conflict message. Match with [errors.As].
type UniqueViolationError struct {
	// Field is the JSON name of the conflicting user attribute. Empty when
	// the violated constraint could not be attributed to a known field.
	Field string
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return "unique constraint violation"
	}
	return fmt.Sprintf("value for field %q already exists", e.Field)
}
