package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/mock"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/models"
)

func TestGetSalaryByUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSalaryRepository(ctrl)
	svc := NewSalaryService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().FindSalaryByUserID(ctx, int64(7)).
		Return(models.Salary{ID: 1, Amount: models.DefaultSalaryAmount, UserID: 7}, nil)

	salary, err := svc.GetSalaryByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(models.DefaultSalaryAmount), salary.Amount)
}

func TestGetSalaryByUserID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSalaryRepository(ctrl)
	svc := NewSalaryService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().FindSalaryByUserID(ctx, int64(42)).
		Return(models.Salary{}, store.ErrSalaryNotFound)

	_, err := svc.GetSalaryByUserID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrSalaryNotFound)
}
