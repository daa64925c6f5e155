package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/auth"
)

type authFixture struct {
	users   *stubUserStore
	tokens  *stubTokenStore
	service AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	profiles := newStubProfileStore()
	users := newStubUserStore(profiles)
	tokens := newStubTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "orkinet-test",
	})
	return &authFixture{
		users:   users,
		tokens:  tokens,
		service: NewAuthService(users, tokens, jwtService, zerolog.Nop()),
	}
}

func (f *authFixture) register(t *testing.T, email, password, name string) *dto.TokenResponse {
	t.Helper()
	resp, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: name,
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterCreatesAccountAndIssuesTokens(t *testing.T) {
	f := newAuthFixture(t)

	resp := f.register(t, "Maria@Example.com", "password123", "Maria Silva")
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotEmpty(t, resp.UserID)

	user, err := f.users.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.Password)

	profile, err := f.users.profiles.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", profile.DisplayName)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "not-an-email",
		Password:    "password123",
		DisplayName: "Maria",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "maria@example.com",
		Password:    "short",
		DisplayName: "Maria",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestRegisterRejectsShortDisplayName(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "maria@example.com",
		Password:    "password123",
		DisplayName: " M ",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "maria@example.com", "password123", "Maria Silva")

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:       "MARIA@example.com",
		Password:    "password123",
		DisplayName: "Other Maria",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginWithValidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")

	resp, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)

	user, err := f.users.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLoginWithWrongPasswordFails(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "maria@example.com", "password123", "Maria Silva")

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWithUnknownEmailFails(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	// Unknown accounts and wrong passwords are indistinguishable to the caller
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWithDisabledAccountFails(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")
	f.users.users[registered.UserID].IsActive = false

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")

	resp, err := f.service.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, resp.UserID)
	assert.NotEqual(t, registered.RefreshToken, resp.RefreshToken)

	// The presented token is revoked and cannot be replayed
	_, err = f.service.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// The rotated token keeps working
	_, err = f.service.RefreshToken(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokenRejectsUnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshTokenRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")
	f.tokens.tokens[registered.RefreshToken].expiry = time.Now().Add(-time.Minute)

	_, err := f.service.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshTokenRejectsDisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")
	f.users.users[registered.UserID].IsActive = false

	_, err := f.service.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	registered := f.register(t, "maria@example.com", "password123", "Maria Silva")

	require.NoError(t, f.service.Logout(context.Background(), registered.RefreshToken))

	_, err := f.service.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
