package service

import (
	"fmt"

	"github.com/mkorolev/salary-service/internal/config"
	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
)

// Services aggregates all business-logic services of the application.
type Services struct {
	AuthService   AuthService
	UserService   UserService
	SalaryService SalaryService
}

// NewServices builds the credential hasher and token manager from the
// immutable auth configuration and wires every service to its repositories.
func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) (*Services, error) {
	tokens, err := utils.NewTokenManager(cfg.TokenSignKey, cfg.TokenAlgorithm, cfg.TokenIssuer, cfg.TokenLifetime())
	if err != nil {
		return nil, fmt.Errorf("error creating token manager: %w", err)
	}

	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, hasher, tokens, logger),
		UserService:   NewUserService(repositories.UserRepository, logger),
		SalaryService: NewSalaryService(repositories.SalaryRepository, logger),
	}, nil
}
