package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/mock"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
	"github.com/mkorolev/salary-service/models"
)

// newTestAuthSvc builds an authService backed by a mocked repository and
// real (cheap) hashing/signing primitives.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	mockRepo := mock.NewMockUserRepository(ctrl)

	tokens, err := utils.NewTokenManager("secret-key", "HS256", "test-issuer", time.Hour)
	require.NoError(t, err)

	svc := NewAuthService(mockRepo, utils.NewPasswordHasher(bcrypt.MinCost), tokens, logger.Nop()).(*authService)

	return svc, mockRepo
}

func TestRegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "john@example.com", Password: "password123"}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, req.Email, u.Email)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, req.Password, u.PasswordHash, "password must be stored hashed")

			u.ID = 1
			return u, nil
		},
	)

	registeredUser, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registeredUser.ID)
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty email", models.RegisterRequest{Password: "password123"}},
		{"empty password", models.RegisterRequest{Email: "john@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_UniqueViolationPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, &store.UniqueViolationError{Field: "email"})

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"})

	var uniqueErr *store.UniqueViolationError
	require.ErrorAs(t, err, &uniqueErr)
	assert.Equal(t, "email", uniqueErr.Field)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.NewPasswordHasher(bcrypt.MinCost).Hash("password123")
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserBy(ctx, map[string]any{"email": "john@example.com"}).
		Return(models.User{ID: 1, Email: "john@example.com", PasswordHash: hash}, nil)

	foundUser, err := svc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), foundUser.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserBy(ctx, map[string]any{"email": "missing@example.com"}).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "missing@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.NewPasswordHasher(bcrypt.MinCost).Hash("password123")
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserBy(ctx, map[string]any{"email": "john@example.com"}).
		Return(models.User{ID: 1, PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, "john@example.com", "wrong-password")

	// Indistinguishable from the unknown-email failure.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db network error")
	mockRepo.EXPECT().FindUserBy(ctx, gomock.Any()).
		Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, "john@example.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, dbErr)
}

func TestCreateToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	userID, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, utils.ErrTokenInvalid)
}
