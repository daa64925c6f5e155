package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

// FriendService defines the interface for social graph operations
type FriendService interface {
	SendRequest(ctx context.Context, sessionUserID, toID string) error
	AcceptRequest(ctx context.Context, sessionUserID, requesterID string) error
	RejectRequest(ctx context.Context, sessionUserID, requesterID string) error
	RemoveFriend(ctx context.Context, sessionUserID, friendID string) error
	ListFriends(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error)
	ListIncomingRequests(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error)
	ListOutgoingRequests(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error)
}

// friendServiceImpl implements FriendService
type friendServiceImpl struct {
	profileStore ProfileStore
	logger       zerolog.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(profileStore ProfileStore, logger zerolog.Logger) FriendService {
	return &friendServiceImpl{
		profileStore: profileStore,
		logger:       logger,
	}
}

// SendRequest records a friend request from the session user to toID.
// Both profiles are read first so every precondition is checked before
// anything is written.
func (s *friendServiceImpl) SendRequest(ctx context.Context, sessionUserID, toID string) error {
	if sessionUserID == toID {
		return apperrors.ErrSelfFriendRequest
	}

	sender, err := s.profileStore.GetByID(ctx, sessionUserID)
	if err != nil {
		return err
	}
	if _, err := s.profileStore.GetByID(ctx, toID); err != nil {
		return err
	}

	if sender.HasFriend(toID) {
		return apperrors.ErrAlreadyFriends
	}
	if sender.HasOutgoingRequest(toID) {
		return apperrors.ErrRequestAlreadyExists
	}
	if sender.HasIncomingRequest(toID) {
		return apperrors.NewInvalidOperationError("this user has already sent you a friend request")
	}

	if err := s.profileStore.CreateFriendRequest(ctx, sessionUserID, toID); err != nil {
		return err
	}
	s.logger.Info().Str("from", sessionUserID).Str("to", toID).Msg("Friend request sent")
	return nil
}

// AcceptRequest promotes an incoming request into a friendship
func (s *friendServiceImpl) AcceptRequest(ctx context.Context, sessionUserID, requesterID string) error {
	user, err := s.profileStore.GetByID(ctx, sessionUserID)
	if err != nil {
		return err
	}
	if !user.HasIncomingRequest(requesterID) {
		return apperrors.ErrNoSuchFriendRequest
	}

	if err := s.profileStore.AcceptFriendRequest(ctx, sessionUserID, requesterID); err != nil {
		return err
	}
	s.logger.Info().Str("user", sessionUserID).Str("requester", requesterID).Msg("Friend request accepted")
	return nil
}

// RejectRequest discards an incoming request
func (s *friendServiceImpl) RejectRequest(ctx context.Context, sessionUserID, requesterID string) error {
	user, err := s.profileStore.GetByID(ctx, sessionUserID)
	if err != nil {
		return err
	}
	if !user.HasIncomingRequest(requesterID) {
		return apperrors.ErrNoSuchFriendRequest
	}

	return s.profileStore.RejectFriendRequest(ctx, sessionUserID, requesterID)
}

// RemoveFriend deletes a friendship edge. Removing an absent edge is a
// no-op so retries are safe.
func (s *friendServiceImpl) RemoveFriend(ctx context.Context, sessionUserID, friendID string) error {
	if sessionUserID == friendID {
		return apperrors.NewInvalidOperationError("cannot unfriend yourself")
	}
	if _, err := s.profileStore.GetByID(ctx, friendID); err != nil {
		return err
	}
	return s.profileStore.RemoveFriend(ctx, sessionUserID, friendID)
}

// ListFriends resolves the user's friend IDs into profile summaries
func (s *friendServiceImpl) ListFriends(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error) {
	return s.resolveSet(ctx, userID, func(p friendSets) []string { return p.friends })
}

// ListIncomingRequests resolves the profiles that asked to be friends
func (s *friendServiceImpl) ListIncomingRequests(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error) {
	return s.resolveSet(ctx, userID, func(p friendSets) []string { return p.incoming })
}

// ListOutgoingRequests resolves the profiles the user asked to befriend
func (s *friendServiceImpl) ListOutgoingRequests(ctx context.Context, userID string) ([]*dto.ProfileSummaryResponse, error) {
	return s.resolveSet(ctx, userID, func(p friendSets) []string { return p.outgoing })
}

type friendSets struct {
	friends  []string
	incoming []string
	outgoing []string
}

func (s *friendServiceImpl) resolveSet(ctx context.Context, userID string, pick func(friendSets) []string) ([]*dto.ProfileSummaryResponse, error) {
	profile, err := s.profileStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := pick(friendSets{
		friends:  profile.Friends,
		incoming: profile.FriendRequests,
		outgoing: profile.PendingRequests,
	})

	profiles, err := s.profileStore.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dto.ToProfileSummaryResponses(profiles), nil
}
