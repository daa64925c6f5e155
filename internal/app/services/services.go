package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasmb/orkinet/internal/app/models"
)

// Store interfaces consumed by the services. They are satisfied by the
// concrete repositories and by the stubs in the service tests.

// UserStore provides account credential persistence
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	UpdateLastLogin(ctx context.Context, id string) error
}

// TokenStore provides refresh token persistence
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID string, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (string, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID string) error
}

// ProfileStore provides profile persistence including the transactional
// social graph mutations
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	CreateTx(ctx context.Context, tx pgx.Tx, profile *models.Profile) error
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
	AddToSet(ctx context.Context, id, column, value string) error
	RemoveFromSet(ctx context.Context, id, column, value string) error
	CreateFriendRequest(ctx context.Context, fromID, toID string) error
	AcceptFriendRequest(ctx context.Context, userID, requesterID string) error
	RejectFriendRequest(ctx context.Context, userID, requesterID string) error
	RemoveFriend(ctx context.Context, userID, friendID string) error
}

// CommunityStore provides community persistence including the
// transactional membership mutations
type CommunityStore interface {
	GetByID(ctx context.Context, id string) (*models.Community, error)
	ListAll(ctx context.Context, limit int) ([]*models.Community, error)
	ListByMember(ctx context.Context, userID string) ([]*models.Community, error)
	Create(ctx context.Context, community *models.Community) error
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, communityID, userID string) error
	RemoveMember(ctx context.Context, communityID, userID string) error
	AddModerator(ctx context.Context, communityID, userID string) error
	RemoveModerator(ctx context.Context, communityID, userID string) error
}

// SearchStore provides the lookup queries behind the search endpoints
type SearchStore interface {
	SearchProfilesByPrefix(ctx context.Context, query string, limit int) ([]*models.Profile, error)
	ScanProfilesBySubstring(ctx context.Context, query string, scanLimit, limit int) ([]*models.Profile, error)
	SearchCommunitiesByPrefix(ctx context.Context, query string, limit int) ([]*models.Community, error)
}
