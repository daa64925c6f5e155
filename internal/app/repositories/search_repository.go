package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/pkg/logger"
)

// SearchRepository handles prefix and fallback lookups over profiles
// and communities
type SearchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *pgxpool.Pool) *SearchRepository {
	return &SearchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchProfilesByPrefix finds profiles whose lowercased display name
// starts with query
func (r *SearchRepository) SearchProfilesByPrefix(ctx context.Context, query string, limit int) ([]*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Like{"display_name_lower": likeEscaper.Replace(query) + "%"}).
		OrderBy("display_name_lower ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building profile prefix search SQL")
		return nil, fmt.Errorf("failed to build profile search query: %w", err)
	}
	return r.queryProfiles(ctx, sql, args...)
}

// ScanProfilesBySubstring filters a bounded window of the oldest
// profiles by substring match. Used as the fallback when the prefix
// search returns nothing; scanLimit caps how many rows are considered.
func (r *SearchRepository) ScanProfilesBySubstring(ctx context.Context, query string, scanLimit, limit int) ([]*models.Profile, error) {
	sql := fmt.Sprintf(`SELECT %s FROM (
		SELECT %s FROM profiles ORDER BY created_at ASC LIMIT $1
	) p WHERE p.display_name_lower LIKE '%%' || $2 || '%%' ORDER BY p.display_name_lower ASC LIMIT $3`,
		strings.Join(profileColumns, ", "), strings.Join(profileColumns, ", "))

	return r.queryProfiles(ctx, sql, scanLimit, likeEscaper.Replace(query), limit)
}

// SearchCommunitiesByPrefix finds communities whose lowercased name
// starts with query
func (r *SearchRepository) SearchCommunitiesByPrefix(ctx context.Context, query string, limit int) ([]*models.Community, error) {
	sql, args, err := r.sb.Select(communityColumns...).
		From("communities").
		Where(squirrel.Like{"name_lower": likeEscaper.Replace(query) + "%"}).
		OrderBy("name_lower ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building community prefix search SQL")
		return nil, fmt.Errorf("failed to build community search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying community search")
		return nil, fmt.Errorf("error searching communities: %w", err)
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

func (r *SearchRepository) queryProfiles(ctx context.Context, sql string, args ...any) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying profile search")
		return nil, fmt.Errorf("error searching profiles: %w", err)
	}
	defer rows.Close()

	out := []*models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return out, nil
}
