package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/config"
)

// SearchService defines the interface for name lookups
type SearchService interface {
	SearchUsers(ctx context.Context, term string, max int) (*dto.SearchUsersResponse, error)
	SearchCommunities(ctx context.Context, term string, max int) (*dto.SearchCommunitiesResponse, error)
}

// searchServiceImpl implements SearchService
type searchServiceImpl struct {
	searchStore SearchStore
	cfg         config.SearchConfig
	logger      zerolog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(searchStore SearchStore, cfg config.SearchConfig, logger zerolog.Logger) SearchService {
	return &searchServiceImpl{
		searchStore: searchStore,
		cfg:         cfg,
		logger:      logger,
	}
}

// SearchUsers finds profiles by display name prefix. When the prefix
// query comes back empty, a bounded window of the oldest profiles is
// scanned for substring matches so mid-name hits still surface.
func (s *searchServiceImpl) SearchUsers(ctx context.Context, term string, max int) (*dto.SearchUsersResponse, error) {
	query := strings.ToLower(strings.TrimSpace(term))
	if max <= 0 {
		max = s.cfg.DefaultMaxResults
	}

	resp := &dto.SearchUsersResponse{Query: query, Results: []*dto.ProfileSummaryResponse{}}
	if query == "" {
		return resp, nil
	}

	profiles, err := s.searchStore.SearchProfilesByPrefix(ctx, query, max)
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		profiles, err = s.searchStore.ScanProfilesBySubstring(ctx, query, s.cfg.FallbackScanLimit, max)
		if err != nil {
			return nil, err
		}
		s.logger.Debug().Str("query", query).Int("hits", len(profiles)).Msg("Prefix search empty, used fallback scan")
	}

	resp.Results = dto.ToProfileSummaryResponses(profiles)
	return resp, nil
}

// SearchCommunities finds communities by name prefix
func (s *searchServiceImpl) SearchCommunities(ctx context.Context, term string, max int) (*dto.SearchCommunitiesResponse, error) {
	query := strings.ToLower(strings.TrimSpace(term))
	if max <= 0 {
		max = s.cfg.DefaultMaxResults
	}

	resp := &dto.SearchCommunitiesResponse{Query: query, Results: []*dto.CommunityResponse{}}
	if query == "" {
		return resp, nil
	}

	communities, err := s.searchStore.SearchCommunitiesByPrefix(ctx, query, max)
	if err != nil {
		return nil, err
	}
	resp.Results = dto.ToCommunityResponses(communities)
	return resp, nil
}
