package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

func newCommunityFixture(t *testing.T) (*stubProfileStore, *stubCommunityStore, CommunityService) {
	t.Helper()
	profiles := newStubProfileStore(
		newProfile("ana", "Ana Costa"),
		newProfile("bruno", "Bruno Lima"),
		newProfile("carla", "Carla Dias"),
	)
	communities := newStubCommunityStore(profiles)
	return profiles, communities, NewCommunityService(communities, profiles, zerolog.Nop())
}

func createTestCommunity(t *testing.T, svc CommunityService, ownerID string) *dto.CommunityResponse {
	t.Helper()
	community, err := svc.CreateCommunity(context.Background(), ownerID, &dto.CreateCommunityRequest{
		Name:        "Retro Gamers",
		Description: "Old consoles and older games",
		Category:    "GAMES",
	})
	require.NoError(t, err)
	return community
}

func TestCreateCommunitySetsOwnerAsMemberAndModerator(t *testing.T) {
	profiles, _, svc := newCommunityFixture(t)

	community := createTestCommunity(t, svc, "ana")

	assert.Equal(t, "ana", community.CreatedBy)
	assert.Equal(t, []string{"ana"}, community.Members)
	assert.Equal(t, []string{"ana"}, community.Moderators)
	assert.Equal(t, 1, community.MemberCount)
	assert.Equal(t, []string{community.ID}, profiles.profiles["ana"].Communities)
}

func TestCreateCommunityRejectsUnknownCategory(t *testing.T) {
	_, _, svc := newCommunityFixture(t)

	_, err := svc.CreateCommunity(context.Background(), "ana", &dto.CreateCommunityRequest{
		Name:        "Retro Gamers",
		Description: "desc",
		Category:    "NOT_A_CATEGORY",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestCreateCommunityAcceptsLowercaseCategory(t *testing.T) {
	_, _, svc := newCommunityFixture(t)

	community, err := svc.CreateCommunity(context.Background(), "ana", &dto.CreateCommunityRequest{
		Name:        "Retro Gamers",
		Description: "desc",
		Category:    "games",
	})
	require.NoError(t, err)
	assert.Equal(t, "GAMES", community.Category)
}

func TestJoinCommunityIsIdempotent(t *testing.T) {
	profiles, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")

	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))

	assert.Equal(t, []string{"ana", "bruno"}, stores.communities[community.ID].Members)
	assert.Equal(t, []string{community.ID}, profiles.profiles["bruno"].Communities)
}

func TestLeaveCommunityRequiresMembership(t *testing.T) {
	_, _, svc := newCommunityFixture(t)
	community := createTestCommunity(t, svc, "ana")

	err := svc.LeaveCommunity(context.Background(), community.ID, "bruno")
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestSoleModeratorCannotLeaveUntilPromotingAnother(t *testing.T) {
	profiles, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))

	err := svc.LeaveCommunity(ctx, community.ID, "ana")
	assert.ErrorIs(t, err, apperrors.ErrSoleModerator)

	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "bruno"))
	require.NoError(t, svc.LeaveCommunity(ctx, community.ID, "ana"))

	assert.Equal(t, []string{"bruno"}, stores.communities[community.ID].Members)
	assert.Equal(t, []string{"bruno"}, stores.communities[community.ID].Moderators)
	assert.Empty(t, profiles.profiles["ana"].Communities)
}

func TestSoleModeratorCannotLeaveAsLastMember(t *testing.T) {
	_, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")

	// Even with nobody else left, the creator stays the sole moderator;
	// the way out is deleting the community
	err := svc.LeaveCommunity(ctx, community.ID, "ana")
	assert.ErrorIs(t, err, apperrors.ErrSoleModerator)
	assert.Equal(t, []string{"ana"}, stores.communities[community.ID].Members)
	assert.Equal(t, []string{"ana"}, stores.communities[community.ID].Moderators)
}

func TestPromoteModeratorIsOwnerOnly(t *testing.T) {
	_, _, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "carla"))
	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "bruno"))

	// A moderator who is not the owner cannot promote
	err := svc.PromoteModerator(ctx, community.ID, "bruno", "carla")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestPromoteRequiresMembership(t *testing.T) {
	_, _, svc := newCommunityFixture(t)
	community := createTestCommunity(t, svc, "ana")

	err := svc.PromoteModerator(context.Background(), community.ID, "ana", "bruno")
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestDemoteModerator(t *testing.T) {
	_, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))
	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "bruno"))

	require.NoError(t, svc.DemoteModerator(ctx, community.ID, "ana", "bruno"))
	assert.Equal(t, []string{"ana"}, stores.communities[community.ID].Moderators)

	// The owner cannot be demoted
	err := svc.DemoteModerator(ctx, community.ID, "ana", "ana")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestRemoveMemberRules(t *testing.T) {
	profiles, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "carla"))
	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "bruno"))

	// A plain member cannot remove anyone
	err := svc.RemoveMember(ctx, community.ID, "carla", "bruno")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The owner can never be removed
	err = svc.RemoveMember(ctx, community.ID, "bruno", "ana")
	assert.ErrorIs(t, err, apperrors.ErrOwnerNotRemovable)

	// A moderator can remove a plain member
	require.NoError(t, svc.RemoveMember(ctx, community.ID, "bruno", "carla"))
	assert.Equal(t, []string{"ana", "bruno"}, stores.communities[community.ID].Members)
	assert.Empty(t, profiles.profiles["carla"].Communities)

	// Only the owner can remove a moderator
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "carla"))
	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "carla"))
	err = svc.RemoveMember(ctx, community.ID, "bruno", "carla")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	require.NoError(t, svc.RemoveMember(ctx, community.ID, "ana", "carla"))
}

func TestUpdateCommunityAuthzAndValidation(t *testing.T) {
	_, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))

	newName := "Vintage Gamers"
	_, err := svc.UpdateCommunity(ctx, community.ID, "bruno", &dto.UpdateCommunityRequest{Name: &newName})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	badCategory := "NOPE"
	_, err = svc.UpdateCommunity(ctx, community.ID, "ana", &dto.UpdateCommunityRequest{Category: &badCategory})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)

	updated, err := svc.UpdateCommunity(ctx, community.ID, "ana", &dto.UpdateCommunityRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Vintage Gamers", updated.Name)
	assert.Equal(t, "vintage gamers", stores.communities[community.ID].NameLower)
}

func TestDeleteCommunityCascadesMemberships(t *testing.T) {
	profiles, stores, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))

	// Owner only
	err := svc.DeleteCommunity(ctx, community.ID, "bruno")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteCommunity(ctx, community.ID, "ana"))
	assert.NotContains(t, stores.communities, community.ID)
	assert.Empty(t, profiles.profiles["ana"].Communities)
	assert.Empty(t, profiles.profiles["bruno"].Communities)
}

func TestListMembersWithRoles(t *testing.T) {
	_, _, svc := newCommunityFixture(t)
	ctx := context.Background()
	community := createTestCommunity(t, svc, "ana")
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "bruno"))
	require.NoError(t, svc.JoinCommunity(ctx, community.ID, "carla"))
	require.NoError(t, svc.PromoteModerator(ctx, community.ID, "ana", "bruno"))

	members, err := svc.ListMembersWithRoles(ctx, community.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)

	roles := map[string]string{}
	for _, m := range members {
		roles[m.Profile.ID] = m.Role
	}
	assert.Equal(t, "owner", roles["ana"])
	assert.Equal(t, "moderator", roles["bruno"])
	assert.Equal(t, "member", roles["carla"])
}

func TestListCategoriesReturnsFixedSet(t *testing.T) {
	_, _, svc := newCommunityFixture(t)

	categories := svc.ListCategories()
	assert.Len(t, categories, 15)
	assert.Contains(t, categories, "GAMES")
	assert.Contains(t, categories, "OTHER")
}
