package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

// authService is the concrete implementation of AuthService.
// All state is read-only after construction.
type authService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	// Changing it invalidates every outstanding token.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued token.
	tokenIssuer string

	tokenDuration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the application config.
// Passwords are hashed with bcrypt at cfg.PasswordHashCost.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, utils.NewBcryptHasher(cfg.PasswordHashCost), cfg, logger)
}

func newAuthService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) *authService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The username is looked up first; a concurrent registration that slips
// past the lookup is still rejected by the unique constraint and reported
// as ErrUsernameTaken as well.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err == nil {
		log.Info().Str("username", creds.Username).Msg("username is already taken")
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*authService.Register").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	digest, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: digest,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("username", creds.Username).Msg("username was taken concurrently")
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks creds and issues a token valid for the configured duration.
// Unknown usernames and wrong passwords are reported identically.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("login rejected")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.Token{}, models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Info().Msg("login rejected")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("token generation failed")
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
	}

	return token, user, nil
}

// ParseToken normalises every validation failure to ErrInvalidToken so
// callers cannot tell an expired token from a forged one.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrInvalidToken
	}

	return claims, nil
}
