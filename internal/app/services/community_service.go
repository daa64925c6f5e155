package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

// CommunityService defines the interface for community operations.
// Authorization is enforced here: controllers only pass the session
// user through.
type CommunityService interface {
	CreateCommunity(ctx context.Context, sessionUserID string, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error)
	GetCommunity(ctx context.Context, id string) (*dto.CommunityResponse, error)
	ListCommunities(ctx context.Context, limit int) ([]*dto.CommunityResponse, error)
	ListUserCommunities(ctx context.Context, userID string) ([]*dto.CommunityResponse, error)
	ListCategories() []string
	JoinCommunity(ctx context.Context, communityID, sessionUserID string) error
	LeaveCommunity(ctx context.Context, communityID, sessionUserID string) error
	PromoteModerator(ctx context.Context, communityID, sessionUserID, memberID string) error
	DemoteModerator(ctx context.Context, communityID, sessionUserID, moderatorID string) error
	RemoveMember(ctx context.Context, communityID, sessionUserID, memberID string) error
	UpdateCommunity(ctx context.Context, communityID, sessionUserID string, req *dto.UpdateCommunityRequest) (*dto.CommunityResponse, error)
	DeleteCommunity(ctx context.Context, communityID, sessionUserID string) error
	ListMembersWithRoles(ctx context.Context, communityID string) ([]*dto.CommunityMemberResponse, error)
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityStore CommunityStore
	profileStore   ProfileStore
	sanitizer      *bluemonday.Policy
	logger         zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityStore CommunityStore, profileStore ProfileStore, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{
		communityStore: communityStore,
		profileStore:   profileStore,
		sanitizer:      bluemonday.StrictPolicy(),
		logger:         logger,
	}
}

// CreateCommunity creates a community with the session user as its
// owner, sole member, and sole moderator
func (s *communityServiceImpl) CreateCommunity(ctx context.Context, sessionUserID string, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	category := models.CommunityCategory(strings.ToUpper(strings.TrimSpace(req.Category)))
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if _, err := s.profileStore.GetByID(ctx, sessionUserID); err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	community := &models.Community{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		Category:    category,
		IsPublic:    isPublic,
		PhotoURL:    req.PhotoURL,
		CreatedBy:   sessionUserID,
		Members:     []string{sessionUserID},
		Moderators:  []string{sessionUserID},
	}

	if err := s.communityStore.Create(ctx, community); err != nil {
		return nil, err
	}

	s.logger.Info().Str("communityID", community.ID).Str("ownerID", sessionUserID).Msg("Community created")
	return dto.ToCommunityResponse(community), nil
}

// GetCommunity retrieves a community by ID
func (s *communityServiceImpl) GetCommunity(ctx context.Context, id string) (*dto.CommunityResponse, error) {
	community, err := s.communityStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCommunityResponse(community), nil
}

// ListCommunities retrieves communities, newest first
func (s *communityServiceImpl) ListCommunities(ctx context.Context, limit int) ([]*dto.CommunityResponse, error) {
	communities, err := s.communityStore.ListAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToCommunityResponses(communities), nil
}

// ListUserCommunities retrieves the communities a user belongs to
func (s *communityServiceImpl) ListUserCommunities(ctx context.Context, userID string) ([]*dto.CommunityResponse, error) {
	communities, err := s.communityStore.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToCommunityResponses(communities), nil
}

// ListCategories returns the fixed category set
func (s *communityServiceImpl) ListCategories() []string {
	out := make([]string, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		out = append(out, string(c))
	}
	return out
}

// JoinCommunity adds the session user to a community. Joining a
// community the user already belongs to is a no-op success.
func (s *communityServiceImpl) JoinCommunity(ctx context.Context, communityID, sessionUserID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community.HasMember(sessionUserID) {
		return nil
	}
	if _, err := s.profileStore.GetByID(ctx, sessionUserID); err != nil {
		return err
	}

	if err := s.communityStore.AddMember(ctx, communityID, sessionUserID); err != nil {
		return err
	}
	s.logger.Info().Str("communityID", communityID).Str("userID", sessionUserID).Msg("User joined community")
	return nil
}

// LeaveCommunity removes the session user from a community. The owner
// cannot leave while being the only moderator; promoting another
// moderator or deleting the community are the ways out.
func (s *communityServiceImpl) LeaveCommunity(ctx context.Context, communityID, sessionUserID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if !community.HasMember(sessionUserID) {
		return apperrors.ErrNotMember
	}
	if sessionUserID == community.CreatedBy &&
		community.HasModerator(sessionUserID) &&
		len(community.Moderators) == 1 {
		return apperrors.ErrSoleModerator
	}

	if err := s.communityStore.RemoveMember(ctx, communityID, sessionUserID); err != nil {
		return err
	}
	s.logger.Info().Str("communityID", communityID).Str("userID", sessionUserID).Msg("User left community")
	return nil
}

// PromoteModerator grants the moderator role. Owner only; the target
// must already be a member.
func (s *communityServiceImpl) PromoteModerator(ctx context.Context, communityID, sessionUserID, memberID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if sessionUserID != community.CreatedBy {
		return apperrors.NewForbiddenError("only the community owner can promote moderators")
	}
	if !community.HasMember(memberID) {
		return apperrors.ErrNotMember
	}
	if community.HasModerator(memberID) {
		return nil
	}
	return s.communityStore.AddModerator(ctx, communityID, memberID)
}

// DemoteModerator revokes the moderator role. Owner only; the owner
// itself cannot be demoted.
func (s *communityServiceImpl) DemoteModerator(ctx context.Context, communityID, sessionUserID, moderatorID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if sessionUserID != community.CreatedBy {
		return apperrors.NewForbiddenError("only the community owner can demote moderators")
	}
	if moderatorID == community.CreatedBy {
		return apperrors.NewInvalidOperationError("the community owner cannot be demoted")
	}
	if !community.HasModerator(moderatorID) {
		return apperrors.NewInvalidOperationError("user is not a moderator")
	}
	return s.communityStore.RemoveModerator(ctx, communityID, moderatorID)
}

// RemoveMember kicks a member out. Owner or moderator; the owner can
// never be removed, and only the owner may remove another moderator.
func (s *communityServiceImpl) RemoveMember(ctx context.Context, communityID, sessionUserID, memberID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if sessionUserID != community.CreatedBy && !community.HasModerator(sessionUserID) {
		return apperrors.NewForbiddenError("only the owner or a moderator can remove members")
	}
	if memberID == community.CreatedBy {
		return apperrors.ErrOwnerNotRemovable
	}
	if !community.HasMember(memberID) {
		return apperrors.ErrNotMember
	}
	if community.HasModerator(memberID) && sessionUserID != community.CreatedBy {
		return apperrors.NewForbiddenError("only the owner can remove a moderator")
	}

	if err := s.communityStore.RemoveMember(ctx, communityID, memberID); err != nil {
		return err
	}
	s.logger.Info().Str("communityID", communityID).Str("memberID", memberID).Str("actorID", sessionUserID).Msg("Member removed from community")
	return nil
}

// UpdateCommunity applies a partial update. Owner or moderator.
func (s *communityServiceImpl) UpdateCommunity(ctx context.Context, communityID, sessionUserID string, req *dto.UpdateCommunityRequest) (*dto.CommunityResponse, error) {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if sessionUserID != community.CreatedBy && !community.HasModerator(sessionUserID) {
		return nil, apperrors.NewForbiddenError("only the owner or a moderator can edit the community")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Category != nil {
		category := models.CommunityCategory(strings.ToUpper(strings.TrimSpace(*req.Category)))
		if !category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		updates["category"] = string(category)
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}

	if len(updates) > 0 {
		if err := s.communityStore.UpdateFields(ctx, communityID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetCommunity(ctx, communityID)
}

// DeleteCommunity deletes a community and its memberships. Owner only.
func (s *communityServiceImpl) DeleteCommunity(ctx context.Context, communityID, sessionUserID string) error {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if sessionUserID != community.CreatedBy {
		return apperrors.NewForbiddenError("only the community owner can delete it")
	}

	if err := s.communityStore.Delete(ctx, communityID); err != nil {
		return err
	}
	s.logger.Info().Str("communityID", communityID).Str("ownerID", sessionUserID).Msg("Community deleted")
	return nil
}

// ListMembersWithRoles resolves member profiles and tags each with its
// role in the community
func (s *communityServiceImpl) ListMembersWithRoles(ctx context.Context, communityID string) ([]*dto.CommunityMemberResponse, error) {
	community, err := s.communityStore.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileStore.GetByIDs(ctx, community.Members)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CommunityMemberResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, &dto.CommunityMemberResponse{
			Profile: dto.ToProfileSummaryResponse(p),
			Role:    strings.ToLower(string(community.RoleOf(p.ID))),
		})
	}
	return out, nil
}
