package service

import (
	"context"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/models"
)

// salaryService is the concrete implementation of SalaryService.
type salaryService struct {
	salaryRepository store.SalaryRepository
	logger           *logger.Logger
}

// NewSalaryService constructs a SalaryService wired to the given
// SalaryRepository.
func NewSalaryService(salaryRepository store.SalaryRepository, logger *logger.Logger) SalaryService {
	return &salaryService{
		salaryRepository: salaryRepository,
		logger:           logger,
	}
}

// GetSalaryByUserID returns the salary record owned by the given user or
// store.ErrSalaryNotFound.
func (s *salaryService) GetSalaryByUserID(ctx context.Context, userID int64) (models.Salary, error) {
	return s.salaryRepository.FindSalaryByUserID(ctx, userID)
}
