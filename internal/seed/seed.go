package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/lucasmb/orkinet/internal/app/models"
	appRepos "github.com/lucasmb/orkinet/internal/app/repositories"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/auth"
)

// Demo accounts created on first startup. They mirror the fixtures the
// frontend ships with, so a fresh install has something to browse.
var demoAccounts = []struct {
	id          string
	email       string
	displayName string
	country     string
}{
	{"user-1", "maria@example.com", "Maria Silva", "Brasil"},
	{"user-2", "joao@example.com", "João Santos", "Brasil"},
	{"user-3", "teste@example.com", "Usuário de Teste", "Brasil"},
}

const demoPassword = "password123"

// CreateDefaultData creates the demo accounts and their social edges
// if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	profileRepo := appRepos.NewProfileRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo accounts)...")
	var finalErr error

	created := false
	for _, account := range demoAccounts {
		hashed, err := auth.HashPassword(demoPassword)
		if err != nil {
			return err
		}

		email := account.email
		country := account.country
		user := &appModels.User{
			ID:       account.id,
			Email:    email,
			Password: hashed,
			IsActive: true,
		}
		profile := &appModels.Profile{
			ID:          account.id,
			DisplayName: account.displayName,
			Email:       &email,
			Country:     &country,
		}

		err = userRepo.CreateWithProfile(ctx, user, profile)
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("email", account.email).Msg("Error creating demo account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created = true
	}

	if !created {
		return finalErr
	}

	// Social edges between the fresh accounts: Maria and João are
	// friends, and the test user has a request pending with Maria.
	if err := profileRepo.CreateFriendship(ctx, "user-1", "user-2"); err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo friendship")
		finalErr = errors.Join(finalErr, err)
	}
	if err := profileRepo.CreateFriendRequest(ctx, "user-3", "user-1"); err != nil {
		lgr.Error().Err(err).Msg("Error seeding demo friend request")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo accounts created")
	}
	return finalErr
}
