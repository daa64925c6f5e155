package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

func newProfile(id, name string) *models.Profile {
	return &models.Profile{ID: id, DisplayName: name}
}

func newFriendFixture(t *testing.T) (*stubProfileStore, FriendService) {
	t.Helper()
	store := newStubProfileStore(
		newProfile("ana", "Ana Costa"),
		newProfile("bruno", "Bruno Lima"),
		newProfile("carla", "Carla Dias"),
	)
	return store, NewFriendService(store, zerolog.Nop())
}

func TestSendRequestRecordsBothSides(t *testing.T) {
	store, svc := newFriendFixture(t)

	err := svc.SendRequest(context.Background(), "ana", "bruno")
	require.NoError(t, err)

	assert.Equal(t, []string{"ana"}, store.profiles["bruno"].FriendRequests)
	assert.Equal(t, []string{"bruno"}, store.profiles["ana"].PendingRequests)
	assert.Empty(t, store.profiles["ana"].Friends)
	assert.Empty(t, store.profiles["bruno"].Friends)
}

func TestSendRequestToSelfFails(t *testing.T) {
	_, svc := newFriendFixture(t)

	err := svc.SendRequest(context.Background(), "ana", "ana")
	assert.ErrorIs(t, err, apperrors.ErrSelfFriendRequest)
}

func TestSendRequestToUnknownProfileFails(t *testing.T) {
	_, svc := newFriendFixture(t)

	err := svc.SendRequest(context.Background(), "ana", "nobody")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestSendRequestTwiceFails(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	err := svc.SendRequest(ctx, "ana", "bruno")
	assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyExists)
}

func TestSendRequestWhenAlreadyFriendsFails(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.AcceptRequest(ctx, "bruno", "ana"))

	err := svc.SendRequest(ctx, "ana", "bruno")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFriends)
}

func TestSendRequestWhenReverseRequestPending(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "bruno", "ana"))

	err := svc.SendRequest(ctx, "ana", "bruno")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestAcceptRequestMakesFriendsBothSides(t *testing.T) {
	store, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.AcceptRequest(ctx, "bruno", "ana"))

	assert.Equal(t, []string{"ana"}, store.profiles["bruno"].Friends)
	assert.Equal(t, []string{"bruno"}, store.profiles["ana"].Friends)
	assert.Empty(t, store.profiles["bruno"].FriendRequests)
	assert.Empty(t, store.profiles["ana"].PendingRequests)
}

func TestAcceptRequestWithoutRequestFails(t *testing.T) {
	_, svc := newFriendFixture(t)

	err := svc.AcceptRequest(context.Background(), "bruno", "ana")
	assert.ErrorIs(t, err, apperrors.ErrNoSuchFriendRequest)
}

func TestRejectRequestClearsBothSides(t *testing.T) {
	store, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.RejectRequest(ctx, "bruno", "ana"))

	assert.Empty(t, store.profiles["bruno"].FriendRequests)
	assert.Empty(t, store.profiles["ana"].PendingRequests)
	assert.Empty(t, store.profiles["bruno"].Friends)
	assert.Empty(t, store.profiles["ana"].Friends)

	// A rejected request can be sent again
	assert.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
}

func TestRemoveFriendIsIdempotent(t *testing.T) {
	store, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.AcceptRequest(ctx, "bruno", "ana"))

	require.NoError(t, svc.RemoveFriend(ctx, "ana", "bruno"))
	assert.Empty(t, store.profiles["ana"].Friends)
	assert.Empty(t, store.profiles["bruno"].Friends)

	// Removing again is a no-op, not an error
	assert.NoError(t, svc.RemoveFriend(ctx, "ana", "bruno"))
}

func TestListFriendsResolvesProfiles(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.AcceptRequest(ctx, "bruno", "ana"))
	require.NoError(t, svc.SendRequest(ctx, "carla", "ana"))

	friends, err := svc.ListFriends(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "Bruno Lima", friends[0].DisplayName)

	incoming, err := svc.ListIncomingRequests(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "Carla Dias", incoming[0].DisplayName)

	outgoing, err := svc.ListOutgoingRequests(ctx, "carla")
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, "Ana Costa", outgoing[0].DisplayName)
}

func TestListFriendsSkipsDeletedProfiles(t *testing.T) {
	store, svc := newFriendFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SendRequest(ctx, "ana", "bruno"))
	require.NoError(t, svc.AcceptRequest(ctx, "bruno", "ana"))
	delete(store.profiles, "bruno")

	friends, err := svc.ListFriends(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, friends)
}
