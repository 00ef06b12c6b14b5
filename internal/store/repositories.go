package store

import (
	"context"
	"fmt"

	"github.com/mkorolev/salary-service/internal/config"
	"github.com/mkorolev/salary-service/internal/logger"
)

// Repositories aggregates all persistence interfaces of the service.
type Repositories struct {
	UserRepository   UserRepository
	SalaryRepository SalaryRepository
}

// NewRepositories connects to the configured database, applies pending
// migrations and constructs every repository on top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Repositories{
		UserRepository:   NewUserRepository(db, log),
		SalaryRepository: NewSalaryRepository(db, log),
	}, nil
}
