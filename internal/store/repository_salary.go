package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/models"
)

// salaryRepository is the PostgreSQL-backed implementation of
// [SalaryRepository]. It only reads the "salary" table: rows are written
// exclusively by the user lifecycle transactions in [userRepository].
type salaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSalaryRepository constructs a [SalaryRepository] backed by the provided
// database connection and logger.
func NewSalaryRepository(db *DB, logger *logger.Logger) SalaryRepository {
	logger.Debug().Msg("creating salary repository")
	return &salaryRepository{
		db:     db,
		logger: logger,
	}
}

// FindSalaryByUserID retrieves the salary record owned by the given user.
//
// Error handling:
//   - No matching row → [ErrSalaryNotFound].
//   - Any other error reported at row scan → wrapped [ErrScanningRow].
func (r *salaryRepository) FindSalaryByUserID(ctx context.Context, userID int64) (models.Salary, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findSalaryByUserID, userID)

	salary, err := scanSalary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Salary{}, ErrSalaryNotFound
		}
		log.Err(err).
			Str("func", "*salaryRepository.FindSalaryByUserID").
			Int64("user_id", userID).
			Msg("error: salary lookup failed")
		return models.Salary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return salary, nil
}
