package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/models"
)

func newTestSalaryRepo(t *testing.T) (*salaryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &salaryRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestFindSalaryByUserID_Success(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	now := time.Now()
	nextRaise := now.AddDate(0, 0, models.DefaultRaiseAfterDays)

	rows := sqlmock.
		NewRows([]string{"id", "amount", "next_raise_date", "user_id", "created_at", "updated_at"}).
		AddRow(1, int64(models.DefaultSalaryAmount), nextRaise, 7, now, now)

	mock.ExpectQuery("SELECT (.+) FROM salary").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	salary, err := repo.FindSalaryByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if salary.Amount != models.DefaultSalaryAmount {
		t.Errorf("expected amount %d, got %d", models.DefaultSalaryAmount, salary.Amount)
	}
	if salary.UserID != 7 {
		t.Errorf("expected user_id 7, got %d", salary.UserID)
	}
	if salary.NextRaiseDate == nil {
		t.Fatal("expected next raise date to be scanned")
	}
	if salary.NextRaiseDate.String() != models.DateOf(nextRaise).String() {
		t.Errorf("expected next raise date %s, got %s", models.DateOf(nextRaise), salary.NextRaiseDate)
	}
}

func TestFindSalaryByUserID_NotFound(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM salary").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSalaryByUserID(context.Background(), 42)
	if !errors.Is(err, ErrSalaryNotFound) {
		t.Fatalf("expected ErrSalaryNotFound, got %v", err)
	}
}

func TestFindSalaryByUserID_DBError(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM salary").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindSalaryByUserID(context.Background(), 1)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
