package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/db"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/dberrors"
	"github.com/lucasmb/orkinet/internal/pkg/logger"
)

// UserRepository handles account credential database operations
type UserRepository struct {
	db          *pgxpool.Pool
	sb          squirrel.StatementBuilderType
	profileRepo *ProfileRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db:          pool,
		sb:          squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		profileRepo: NewProfileRepository(pool),
	}
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "is_active", "created_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var u models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "is_active", "created_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by id SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var u models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &u, nil
}

// CreateWithProfile inserts the account credentials and the initial
// profile in a single transaction so a failed profile insert never
// leaves an orphaned account.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	user.CreatedAt = time.Now()

	sql, args, err := r.sb.Insert("users").
		Columns("id", "email", "password", "is_active", "created_at").
		Values(user.ID, user.Email, user.Password, user.IsActive, user.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
			return fmt.Errorf("error creating user: %w", err)
		}
		return r.profileRepo.CreateTx(ctx, tx, profile)
	})
}

// UpdateLastLogin stamps the last successful login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	sql, args, err := r.sb.Update("users").
		Set("last_login_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update last login SQL")
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", id).Msg("Error executing update last login query")
		return fmt.Errorf("error updating last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
