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
	"github.com/lucasmb/orkinet/internal/pkg/dberrors"
	"github.com/lucasmb/orkinet/internal/pkg/logger"
)

var communityColumns = []string{
	"id", "name", "name_lower", "description", "category", "is_public",
	"photo_url", "created_by", "members", "moderators",
	"created_at", "updated_at",
}

var communitySetColumns = map[string]bool{
	"members":    true,
	"moderators": true,
}

// CommunityRepository handles community database operations
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCommunity(row pgx.Row) (*models.Community, error) {
	var c models.Community
	err := row.Scan(
		&c.ID, &c.Name, &c.NameLower, &c.Description, &c.Category, &c.IsPublic,
		&c.PhotoURL, &c.CreatedBy, &c.Members, &c.Moderators,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a community by its ID
func (r *CommunityRepository) GetByID(ctx context.Context, id string) (*models.Community, error) {
	sql, args, err := r.sb.Select(communityColumns...).
		From("communities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get community SQL")
		return nil, fmt.Errorf("failed to build get community query: %w", err)
	}

	community, err := scanCommunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		logger.Error().Err(err).Str("communityID", id).Msg("Error scanning community row")
		return nil, fmt.Errorf("error retrieving community: %w", err)
	}
	return community, nil
}

// ListAll retrieves communities ordered newest first. A non-positive
// limit returns everything.
func (r *CommunityRepository) ListAll(ctx context.Context, limit int) ([]*models.Community, error) {
	builder := r.sb.Select(communityColumns...).
		From("communities").
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list communities SQL")
		return nil, fmt.Errorf("failed to build list communities query: %w", err)
	}
	return r.queryCommunities(ctx, sql, args...)
}

// ListByMember retrieves the communities a user belongs to, ordered by
// name
func (r *CommunityRepository) ListByMember(ctx context.Context, userID string) ([]*models.Community, error) {
	sql := fmt.Sprintf(
		"SELECT %s FROM communities WHERE members @> ARRAY[$1::text] ORDER BY name_lower ASC",
		strings.Join(communityColumns, ", "))
	return r.queryCommunities(ctx, sql, userID)
}

func (r *CommunityRepository) queryCommunities(ctx context.Context, sql string, args ...any) ([]*models.Community, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying communities")
		return nil, fmt.Errorf("error retrieving communities: %w", err)
	}
	defer rows.Close()

	out := []*models.Community{}
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning community row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating community rows: %w", err)
	}
	return out, nil
}

// Create inserts a community and records the membership on the
// creator's profile in one transaction. The creator must already be in
// Members and Moderators.
func (r *CommunityRepository) Create(ctx context.Context, community *models.Community) error {
	now := time.Now()
	community.CreatedAt = now
	community.UpdatedAt = now
	community.NameLower = strings.ToLower(community.Name)

	sql, args, err := r.sb.Insert("communities").
		Columns("id", "name", "name_lower", "description", "category", "is_public",
			"photo_url", "created_by", "members", "moderators", "created_at", "updated_at").
		Values(community.ID, community.Name, community.NameLower, community.Description,
			community.Category, community.IsPublic, community.PhotoURL, community.CreatedBy,
			emptyArray(community.Members), emptyArray(community.Moderators),
			community.CreatedAt, community.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create community SQL")
		return fmt.Errorf("failed to build create community query: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("community name already in use")
			}
			logger.Error().Err(err).Str("communityID", community.ID).Msg("Error executing create community query")
			return fmt.Errorf("error creating community: %w", err)
		}
		return addProfileToSetTx(ctx, tx, community.CreatedBy, "communities", community.ID)
	})
}

// UpdateFields applies a partial update to a community. Name changes
// also refresh the lowercased search column.
func (r *CommunityRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if name, ok := updates["name"].(string); ok {
		updates["name_lower"] = strings.ToLower(name)
	}
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("communities").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update community SQL")
		return fmt.Errorf("failed to build update community query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("communityID", id).Msg("Error executing update community query")
		return fmt.Errorf("error updating community: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}
	return nil
}

// Delete removes a community and clears the membership entry from
// every member profile in one transaction.
func (r *CommunityRepository) Delete(ctx context.Context, id string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE profiles SET communities = array_remove(communities, $1::text), updated_at = now() WHERE communities @> ARRAY[$1::text]`,
			id)
		if err != nil {
			logger.Error().Err(err).Str("communityID", id).Msg("Error clearing community memberships")
			return fmt.Errorf("error clearing community memberships: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM communities WHERE id = $1`, id)
		if err != nil {
			logger.Error().Err(err).Str("communityID", id).Msg("Error executing delete community query")
			return fmt.Errorf("error deleting community: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCommunityNotFound
		}
		return nil
	})
}

// AddMember joins a user to a community, updating both the member list
// and the user's profile in one transaction.
func (r *CommunityRepository) AddMember(ctx context.Context, communityID, userID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.addToSetTx(ctx, tx, communityID, "members", userID); err != nil {
			return err
		}
		return addProfileToSetTx(ctx, tx, userID, "communities", communityID)
	})
}

// RemoveMember removes a user from a community, clearing any moderator
// role and the membership on the user's profile in one transaction.
func (r *CommunityRepository) RemoveMember(ctx context.Context, communityID, userID string) error {
	return db.WithTransaction(ctx, r.db, func(_ context.Context, tx pgx.Tx) error {
		if err := r.removeFromSetTx(ctx, tx, communityID, "members", userID); err != nil {
			return err
		}
		if err := r.removeFromSetTx(ctx, tx, communityID, "moderators", userID); err != nil {
			return err
		}
		return removeProfileFromSetTx(ctx, tx, userID, "communities", communityID)
	})
}

// AddModerator grants the moderator role to a member
func (r *CommunityRepository) AddModerator(ctx context.Context, communityID, userID string) error {
	return r.addToSetTx(ctx, r.db, communityID, "moderators", userID)
}

// RemoveModerator revokes the moderator role from a member
func (r *CommunityRepository) RemoveModerator(ctx context.Context, communityID, userID string) error {
	return r.removeFromSetTx(ctx, r.db, communityID, "moderators", userID)
}

func (r *CommunityRepository) addToSetTx(ctx context.Context, q DBTX, id, column, value string) error {
	if !communitySetColumns[column] {
		return fmt.Errorf("column %q is not a community set column", column)
	}

	sql := fmt.Sprintf(
		`UPDATE communities SET %s = CASE WHEN %s @> ARRAY[$2::text] THEN %s ELSE array_append(%s, $2::text) END, updated_at = now() WHERE id = $1`,
		column, column, column, column)

	cmdTag, err := q.Exec(ctx, sql, id, value)
	if err != nil {
		logger.Error().Err(err).Str("communityID", id).Str("column", column).Msg("Error appending to community set")
		return fmt.Errorf("error updating community %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}
	return nil
}

func (r *CommunityRepository) removeFromSetTx(ctx context.Context, q DBTX, id, column, value string) error {
	if !communitySetColumns[column] {
		return fmt.Errorf("column %q is not a community set column", column)
	}

	sql := fmt.Sprintf(
		`UPDATE communities SET %s = array_remove(%s, $2::text), updated_at = now() WHERE id = $1`,
		column, column)

	cmdTag, err := q.Exec(ctx, sql, id, value)
	if err != nil {
		logger.Error().Err(err).Str("communityID", id).Str("column", column).Msg("Error removing from community set")
		return fmt.Errorf("error updating community %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunityNotFound
	}
	return nil
}

// Profile-side set updates shared with the membership transactions.
func addProfileToSetTx(ctx context.Context, q DBTX, profileID, column, value string) error {
	if !profileSetColumns[column] {
		return fmt.Errorf("column %q is not a profile set column", column)
	}
	sql := fmt.Sprintf(
		`UPDATE profiles SET %s = CASE WHEN %s @> ARRAY[$2::text] THEN %s ELSE array_append(%s, $2::text) END, updated_at = now() WHERE id = $1`,
		column, column, column, column)
	cmdTag, err := q.Exec(ctx, sql, profileID, value)
	if err != nil {
		return fmt.Errorf("error updating profile %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

func removeProfileFromSetTx(ctx context.Context, q DBTX, profileID, column, value string) error {
	if !profileSetColumns[column] {
		return fmt.Errorf("column %q is not a profile set column", column)
	}
	sql := fmt.Sprintf(
		`UPDATE profiles SET %s = array_remove(%s, $2::text), updated_at = now() WHERE id = $1`,
		column, column)
	cmdTag, err := q.Exec(ctx, sql, profileID, value)
	if err != nil {
		return fmt.Errorf("error updating profile %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
