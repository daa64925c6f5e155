package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/auth"
	"github.com/lucasmb/orkinet/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, tokenStore TokenStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account together with its profile and issues the
// first token pair
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if !validation.NewStringValidation(displayName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return nil, apperrors.NewBadRequestError("display name must be between 2 and 80 characters")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	profile := &models.Profile{
		ID:          user.ID,
		DisplayName: displayName,
		Email:       &email,
	}

	if err := s.userStore.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a new token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("userID", user.ID).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		s.logger.Warn().Err(err).Str("userID", user.ID).Msg("Failed to update last login time")
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is revoked
// and a fresh pair is issued
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenStore.RevokeToken(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, _, _, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	}, nil
}
