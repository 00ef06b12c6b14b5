package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("expected classification %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassify_WrappedPgError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := errors.Join(errors.New("query failed"), &pgconn.PgError{Code: pgerrcode.ConnectionDoesNotExist})

	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("expected Retryable for wrapped connection error, got %v", got)
	}
}
