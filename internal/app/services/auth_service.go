package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
	"github.com/akshat/marksheet/internal/pkg/auth"
)

// AuthService handles authentication and user profile access
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a bearer token with the
// configured lifetime. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (token string, expiresIn int64, err error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", 0, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", username).Msg("Error looking up user during login")
		return "", 0, fmt.Errorf("error authenticating user: %w", err)
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	ttl := s.jwtService.AccessTokenTTL()
	token, err = s.jwtService.Generate(user.Username, ttl)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Error issuing token")
		return "", 0, fmt.Errorf("error issuing token: %w", err)
	}

	return token, int64(ttl.Seconds()), nil
}

// GetUser returns a user profile. Students may only read their own
// profile; admins may read any.
func (s *AuthService) GetUser(ctx context.Context, identity models.Identity, username string) (*models.User, error) {
	if identity.Username != username && !identity.IsAdmin() {
		return nil, apperrors.NewForbiddenError("not authorized to view this user")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user, nil
}
