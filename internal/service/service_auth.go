package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
	"github.com/mkorolev/salary-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// token lifecycle using a UserRepository for persistence, bcrypt for
// password hashing and a TokenManager for signed tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher performs salted one-way password hashing and verification.
	hasher *utils.PasswordHasher

	// tokens issues and validates signed session tokens. Key, algorithm and
	// lifetime are fixed at startup.
	tokens *utils.TokenManager

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository,
// password hasher and token manager.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher *utils.PasswordHasher, tokens *utils.TokenManager, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with its default salary record.
//
// It hashes the plain-text password and delegates the transactional
// user+salary creation to the UserRepository. The returned user carries the
// server-assigned ID and timestamps.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - *store.UniqueViolationError if the email or phone number is taken.
//   - A wrapped storage error for any other persistence failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Both the unknown-email and the wrong-password cases collapse into
// ErrInvalidCredentials so that the caller cannot distinguish them.
// Storage failures other than a missing user are propagated unchanged.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.ID).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token carries the user ID as its subject and expires after the
// configured lifetime.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.ID, time.Now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token string against the configured
// key, algorithm and issuer, and returns the subject user ID.
//
// Validation failures are the TokenManager sentinels: utils.ErrTokenInvalid,
// utils.ErrTokenExpired, utils.ErrTokenMissingSubject.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (int64, error) {
	return a.tokens.Validate(tokenString, time.Now())
}
