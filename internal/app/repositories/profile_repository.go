package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/db"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/logger"
)

// profileColumns is the column list shared by all profile selects.
var profileColumns = []string{
	"id", "display_name", "display_name_lower", "email", "photo_url",
	"bio", "birth_date", "gender", "relationship", "country",
	"friends", "friend_requests", "pending_requests", "communities",
	"created_at", "updated_at",
}

// Set-valued columns that the array primitives may touch. Column names
// are interpolated into SQL, so anything outside this list is rejected.
var profileSetColumns = map[string]bool{
	"friends":          true,
	"friend_requests":  true,
	"pending_requests": true,
	"communities":      true,
}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.DisplayName, &p.DisplayNameLower, &p.Email, &p.PhotoURL,
		&p.Bio, &p.BirthDate, &p.Gender, &p.Relationship, &p.Country,
		&p.Friends, &p.FriendRequests, &p.PendingRequests, &p.Communities,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a profile by its ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return profile, nil
}

// GetByIDs retrieves multiple profiles at once. Missing IDs are
// silently skipped; the result order follows the input order.
func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Profile, error) {
	if len(ids) == 0 {
		return []*models.Profile{}, nil
	}

	sql := fmt.Sprintf("SELECT %s FROM profiles WHERE id = ANY($1)", strings.Join(profileColumns, ", "))
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying profiles by IDs")
		return nil, fmt.Errorf("error retrieving profiles: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.Profile, len(ids))
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	out := make([]*models.Profile, 0, len(byID))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.createTx(ctx, r.db, profile)
}

// CreateTx inserts a new profile inside an existing transaction
func (r *ProfileRepository) CreateTx(ctx context.Context, tx pgx.Tx, profile *models.Profile) error {
	return r.createTx(ctx, tx, profile)
}

func (r *ProfileRepository) createTx(ctx context.Context, q DBTX, profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.DisplayNameLower = strings.ToLower(profile.DisplayName)

	sql, args, err := r.sb.Insert("profiles").
		Columns("id", "display_name", "display_name_lower", "email", "photo_url",
			"bio", "birth_date", "gender", "relationship", "country",
			"friends", "friend_requests", "pending_requests", "communities",
			"created_at", "updated_at").
		Values(profile.ID, profile.DisplayName, profile.DisplayNameLower, profile.Email, profile.PhotoURL,
			profile.Bio, profile.BirthDate, profile.Gender, profile.Relationship, profile.Country,
			emptyArray(profile.Friends), emptyArray(profile.FriendRequests),
			emptyArray(profile.PendingRequests), emptyArray(profile.Communities),
			profile.CreatedAt, profile.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create profile SQL")
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("profileID", profile.ID).Msg("Error executing create profile query")
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a profile. The keys of
// updates must be column names; display_name changes also refresh the
// lowercased search column.
func (r *ProfileRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if name, ok := updates["display_name"].(string); ok {
		updates["display_name_lower"] = strings.ToLower(name)
	}
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("profiles").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// AddToSet appends value to a set-valued profile column if not already
// present. The update is idempotent: re-adding an existing value still
// succeeds without duplicating it.
func (r *ProfileRepository) AddToSet(ctx context.Context, id, column, value string) error {
	return r.addToSetTx(ctx, r.db, id, column, value)
}

// RemoveFromSet removes value from a set-valued profile column.
// Removing an absent value is a no-op, not an error.
func (r *ProfileRepository) RemoveFromSet(ctx context.Context, id, column, value string) error {
	return r.removeFromSetTx(ctx, r.db, id, column, value)
}

func (r *ProfileRepository) addToSetTx(ctx context.Context, q DBTX, id, column, value string) error {
	if !profileSetColumns[column] {
		return fmt.Errorf("column %q is not a profile set column", column)
	}

	// The CASE guard keeps the append idempotent while still matching
	// the row, so RowsAffected distinguishes a missing profile from a
	// value that was already present.
	sql := fmt.Sprintf(
		`UPDATE profiles SET %s = CASE WHEN %s @> ARRAY[$2::text] THEN %s ELSE array_append(%s, $2::text) END, updated_at = now() WHERE id = $1`,
		column, column, column, column)

	cmdTag, err := q.Exec(ctx, sql, id, value)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Str("column", column).Msg("Error appending to profile set")
		return fmt.Errorf("error updating profile %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) removeFromSetTx(ctx context.Context, q DBTX, id, column, value string) error {
	if !profileSetColumns[column] {
		return fmt.Errorf("column %q is not a profile set column", column)
	}

	sql := fmt.Sprintf(
		`UPDATE profiles SET %s = array_remove(%s, $2::text), updated_at = now() WHERE id = $1`,
		column, column)

	cmdTag, err := q.Exec(ctx, sql, id, value)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Str("column", column).Msg("Error removing from profile set")
		return fmt.Errorf("error updating profile %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// CreateFriendRequest records a pending request on both sides in a
// single transaction: the recipient gains an incoming request and the
// sender gains an outgoing one.
func (r *ProfileRepository) CreateFriendRequest(ctx context.Context, fromID, toID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.addToSetTx(ctx, tx, toID, "friend_requests", fromID); err != nil {
			return err
		}
		return r.addToSetTx(ctx, tx, fromID, "pending_requests", toID)
	})
}

// AcceptFriendRequest promotes a pending request to a friendship. Both
// friend lists gain the counterpart and both request entries are
// cleared, all in a single transaction.
func (r *ProfileRepository) AcceptFriendRequest(ctx context.Context, userID, requesterID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.addToSetTx(ctx, tx, userID, "friends", requesterID); err != nil {
			return err
		}
		if err := r.addToSetTx(ctx, tx, requesterID, "friends", userID); err != nil {
			return err
		}
		if err := r.removeFromSetTx(ctx, tx, userID, "friend_requests", requesterID); err != nil {
			return err
		}
		return r.removeFromSetTx(ctx, tx, requesterID, "pending_requests", userID)
	})
}

// RejectFriendRequest clears a pending request from both sides in a
// single transaction.
func (r *ProfileRepository) RejectFriendRequest(ctx context.Context, userID, requesterID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.removeFromSetTx(ctx, tx, userID, "friend_requests", requesterID); err != nil {
			return err
		}
		return r.removeFromSetTx(ctx, tx, requesterID, "pending_requests", userID)
	})
}

// CreateFriendship writes the friendship edge to both profiles in a
// single transaction, without requiring a prior request. Used by
// seeding.
func (r *ProfileRepository) CreateFriendship(ctx context.Context, userID, friendID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.addToSetTx(ctx, tx, userID, "friends", friendID); err != nil {
			return err
		}
		return r.addToSetTx(ctx, tx, friendID, "friends", userID)
	})
}

// RemoveFriend deletes the friendship edge from both profiles in a
// single transaction.
func (r *ProfileRepository) RemoveFriend(ctx context.Context, userID, friendID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.removeFromSetTx(ctx, tx, userID, "friends", friendID); err != nil {
			return err
		}
		return r.removeFromSetTx(ctx, tx, friendID, "friends", userID)
	})
}

func emptyArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
