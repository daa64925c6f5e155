package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx operations shared by a pool and a
// transaction, so repository helpers can run inside either.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	ProfileRepository   *ProfileRepository
	CommunityRepository *CommunityRepository
	SearchRepository    *SearchRepository
	TokenRepository     *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		ProfileRepository:   NewProfileRepository(db),
		CommunityRepository: NewCommunityRepository(db),
		SearchRepository:    NewSearchRepository(db),
		TokenRepository:     NewTokenRepository(db),
	}
}
