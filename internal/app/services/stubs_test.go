package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasmb/orkinet/internal/app/models"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

// In-memory stores mirroring the repository semantics, including the
// idempotent set updates and the composite transactional operations.

type stubProfileStore struct {
	profiles map[string]*models.Profile
}

func newStubProfileStore(profiles ...*models.Profile) *stubProfileStore {
	s := &stubProfileStore{profiles: map[string]*models.Profile{}}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *stubProfileStore) GetByID(_ context.Context, id string) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubProfileStore) GetByIDs(_ context.Context, ids []string) ([]*models.Profile, error) {
	out := []*models.Profile{}
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProfileStore) Create(_ context.Context, profile *models.Profile) error {
	profile.DisplayNameLower = strings.ToLower(profile.DisplayName)
	s.profiles[profile.ID] = profile
	return nil
}

func (s *stubProfileStore) CreateTx(ctx context.Context, _ pgx.Tx, profile *models.Profile) error {
	return s.Create(ctx, profile)
}

func (s *stubProfileStore) UpdateFields(_ context.Context, id string, updates map[string]interface{}) error {
	p, ok := s.profiles[id]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	if name, ok := updates["display_name"].(string); ok {
		p.DisplayName = name
		p.DisplayNameLower = strings.ToLower(name)
	}
	if bio, ok := updates["bio"].(string); ok {
		p.Bio = &bio
	}
	if country, ok := updates["country"].(string); ok {
		p.Country = &country
	}
	if photo, ok := updates["photo_url"].(string); ok {
		p.PhotoURL = &photo
	}
	return nil
}

func (s *stubProfileStore) set(id, column string) (*[]string, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	switch column {
	case "friends":
		return &p.Friends, nil
	case "friend_requests":
		return &p.FriendRequests, nil
	case "pending_requests":
		return &p.PendingRequests, nil
	default:
		return &p.Communities, nil
	}
}

func (s *stubProfileStore) AddToSet(_ context.Context, id, column, value string) error {
	target, err := s.set(id, column)
	if err != nil {
		return err
	}
	for _, v := range *target {
		if v == value {
			return nil
		}
	}
	*target = append(*target, value)
	return nil
}

func (s *stubProfileStore) RemoveFromSet(_ context.Context, id, column, value string) error {
	target, err := s.set(id, column)
	if err != nil {
		return err
	}
	out := (*target)[:0]
	for _, v := range *target {
		if v != value {
			out = append(out, v)
		}
	}
	*target = out
	return nil
}

func (s *stubProfileStore) CreateFriendRequest(ctx context.Context, fromID, toID string) error {
	if err := s.AddToSet(ctx, toID, "friend_requests", fromID); err != nil {
		return err
	}
	return s.AddToSet(ctx, fromID, "pending_requests", toID)
}

func (s *stubProfileStore) AcceptFriendRequest(ctx context.Context, userID, requesterID string) error {
	if err := s.AddToSet(ctx, userID, "friends", requesterID); err != nil {
		return err
	}
	if err := s.AddToSet(ctx, requesterID, "friends", userID); err != nil {
		return err
	}
	if err := s.RemoveFromSet(ctx, userID, "friend_requests", requesterID); err != nil {
		return err
	}
	return s.RemoveFromSet(ctx, requesterID, "pending_requests", userID)
}

func (s *stubProfileStore) RejectFriendRequest(ctx context.Context, userID, requesterID string) error {
	if err := s.RemoveFromSet(ctx, userID, "friend_requests", requesterID); err != nil {
		return err
	}
	return s.RemoveFromSet(ctx, requesterID, "pending_requests", userID)
}

func (s *stubProfileStore) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if err := s.RemoveFromSet(ctx, userID, "friends", friendID); err != nil {
		return err
	}
	return s.RemoveFromSet(ctx, friendID, "friends", userID)
}

type stubCommunityStore struct {
	communities map[string]*models.Community
	profiles    *stubProfileStore
}

func newStubCommunityStore(profiles *stubProfileStore, communities ...*models.Community) *stubCommunityStore {
	s := &stubCommunityStore{communities: map[string]*models.Community{}, profiles: profiles}
	for _, c := range communities {
		s.communities[c.ID] = c
	}
	return s
}

func (s *stubCommunityStore) GetByID(_ context.Context, id string) (*models.Community, error) {
	c, ok := s.communities[id]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}
	return c, nil
}

func (s *stubCommunityStore) ListAll(_ context.Context, limit int) ([]*models.Community, error) {
	out := []*models.Community{}
	for _, c := range s.communities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubCommunityStore) ListByMember(_ context.Context, userID string) ([]*models.Community, error) {
	out := []*models.Community{}
	for _, c := range s.communities {
		if c.HasMember(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameLower < out[j].NameLower })
	return out, nil
}

func (s *stubCommunityStore) Create(ctx context.Context, community *models.Community) error {
	community.NameLower = strings.ToLower(community.Name)
	s.communities[community.ID] = community
	return s.profiles.AddToSet(ctx, community.CreatedBy, "communities", community.ID)
}

func (s *stubCommunityStore) UpdateFields(_ context.Context, id string, updates map[string]interface{}) error {
	c, ok := s.communities[id]
	if !ok {
		return apperrors.ErrCommunityNotFound
	}
	if name, ok := updates["name"].(string); ok {
		c.Name = name
		c.NameLower = strings.ToLower(name)
	}
	if desc, ok := updates["description"].(string); ok {
		c.Description = desc
	}
	if category, ok := updates["category"].(string); ok {
		c.Category = models.CommunityCategory(category)
	}
	if isPublic, ok := updates["is_public"].(bool); ok {
		c.IsPublic = isPublic
	}
	return nil
}

func (s *stubCommunityStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.communities[id]; !ok {
		return apperrors.ErrCommunityNotFound
	}
	delete(s.communities, id)
	for profileID := range s.profiles.profiles {
		if err := s.profiles.RemoveFromSet(ctx, profileID, "communities", id); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubCommunityStore) memberSet(id, column string) (*[]string, error) {
	c, ok := s.communities[id]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}
	if column == "moderators" {
		return &c.Moderators, nil
	}
	return &c.Members, nil
}

func (s *stubCommunityStore) addToSet(id, column, value string) error {
	target, err := s.memberSet(id, column)
	if err != nil {
		return err
	}
	for _, v := range *target {
		if v == value {
			return nil
		}
	}
	*target = append(*target, value)
	return nil
}

func (s *stubCommunityStore) removeFromSet(id, column, value string) error {
	target, err := s.memberSet(id, column)
	if err != nil {
		return err
	}
	out := (*target)[:0]
	for _, v := range *target {
		if v != value {
			out = append(out, v)
		}
	}
	*target = out
	return nil
}

func (s *stubCommunityStore) AddMember(ctx context.Context, communityID, userID string) error {
	if err := s.addToSet(communityID, "members", userID); err != nil {
		return err
	}
	return s.profiles.AddToSet(ctx, userID, "communities", communityID)
}

func (s *stubCommunityStore) RemoveMember(ctx context.Context, communityID, userID string) error {
	if err := s.removeFromSet(communityID, "members", userID); err != nil {
		return err
	}
	if err := s.removeFromSet(communityID, "moderators", userID); err != nil {
		return err
	}
	return s.profiles.RemoveFromSet(ctx, userID, "communities", communityID)
}

func (s *stubCommunityStore) AddModerator(_ context.Context, communityID, userID string) error {
	return s.addToSet(communityID, "moderators", userID)
}

func (s *stubCommunityStore) RemoveModerator(_ context.Context, communityID, userID string) error {
	return s.removeFromSet(communityID, "moderators", userID)
}

type stubSearchStore struct {
	profiles    []*models.Profile
	communities []*models.Community
}

func (s *stubSearchStore) SearchProfilesByPrefix(_ context.Context, query string, limit int) ([]*models.Profile, error) {
	out := []*models.Profile{}
	for _, p := range s.profiles {
		if strings.HasPrefix(p.DisplayNameLower, query) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayNameLower < out[j].DisplayNameLower })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubSearchStore) ScanProfilesBySubstring(_ context.Context, query string, scanLimit, limit int) ([]*models.Profile, error) {
	window := s.profiles
	if len(window) > scanLimit {
		window = window[:scanLimit]
	}
	out := []*models.Profile{}
	for _, p := range window {
		if strings.Contains(p.DisplayNameLower, query) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayNameLower < out[j].DisplayNameLower })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubSearchStore) SearchCommunitiesByPrefix(_ context.Context, query string, limit int) ([]*models.Community, error) {
	out := []*models.Community{}
	for _, c := range s.communities {
		if strings.HasPrefix(c.NameLower, query) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameLower < out[j].NameLower })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubUserStore struct {
	users    map[string]*models.User
	profiles *stubProfileStore
}

func newStubUserStore(profiles *stubProfileStore) *stubUserStore {
	return &stubUserStore{users: map[string]*models.User{}, profiles: profiles}
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserStore) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.users[user.ID] = user
	return s.profiles.Create(ctx, profile)
}

func (s *stubUserStore) UpdateLastLogin(_ context.Context, id string) error {
	u, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

type stubTokenRecord struct {
	userID  string
	expiry  time.Time
	revoked bool
}

type stubTokenStore struct {
	tokens map[string]*stubTokenRecord
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: map[string]*stubTokenRecord{}}
}

func (s *stubTokenStore) CreateToken(_ context.Context, token, userID string, expiryDate time.Time) error {
	s.tokens[token] = &stubTokenRecord{userID: userID, expiry: expiryDate}
	return nil
}

func (s *stubTokenStore) GetTokenByValue(_ context.Context, token string) (string, time.Time, error) {
	rec, ok := s.tokens[token]
	if !ok {
		return "", time.Time{}, apperrors.ErrTokenNotFound
	}
	if rec.revoked {
		return "", time.Time{}, apperrors.ErrTokenRevoked
	}
	if time.Now().After(rec.expiry) {
		return "", time.Time{}, apperrors.ErrTokenExpired
	}
	return rec.userID, rec.expiry, nil
}

func (s *stubTokenStore) RevokeToken(_ context.Context, token string) error {
	rec, ok := s.tokens[token]
	if !ok || rec.revoked {
		return apperrors.ErrTokenNotFound
	}
	rec.revoked = true
	return nil
}

func (s *stubTokenStore) RevokeAllUserTokens(_ context.Context, userID string) error {
	for _, rec := range s.tokens {
		if rec.userID == userID {
			rec.revoked = true
		}
	}
	return nil
}
