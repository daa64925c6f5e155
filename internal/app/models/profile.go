package models

import "time"

// Profile defines a user's public record and social-graph edges, based on the
// 'profiles' table. The array fields hold identifiers of other records:
// Friends is symmetric (if A lists B, B lists A), and an unresolved friend
// request lives in exactly two places until resolved - the requester's
// PendingRequests and the target's FriendRequests.
type Profile struct {
	ID               string    `json:"id" db:"id" example:"f1f9c0a4-2f6e-4a2e-9f1d-8c2b9f6f2a11"` // Unique identifier, immutable
	DisplayName      string    `json:"displayName" db:"display_name" example:"Maria Silva"`
	DisplayNameLower string    `json:"-" db:"display_name_lower"` // Derived, used by name search
	Email            *string   `json:"email,omitempty" db:"email"`
	PhotoURL         *string   `json:"photoUrl,omitempty" db:"photo_url"`
	Bio              *string   `json:"bio,omitempty" db:"bio"`
	BirthDate        *string   `json:"birthDate,omitempty" db:"birth_date"`
	Gender           *string   `json:"gender,omitempty" db:"gender"`
	Relationship     *string   `json:"relationship,omitempty" db:"relationship"`
	Country          *string   `json:"country,omitempty" db:"country"`
	Friends          []string  `json:"friends" db:"friends"`
	FriendRequests   []string  `json:"friendRequests" db:"friend_requests"`   // Incoming, ids of requesters
	PendingRequests  []string  `json:"pendingRequests" db:"pending_requests"` // Outgoing, ids of targets
	Communities      []string  `json:"communities" db:"communities"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// HasFriend reports whether other is in the profile's friends set.
func (p *Profile) HasFriend(other string) bool {
	return containsID(p.Friends, other)
}

// HasIncomingRequest reports whether requester has an unresolved request to this profile.
func (p *Profile) HasIncomingRequest(requester string) bool {
	return containsID(p.FriendRequests, requester)
}

// HasOutgoingRequest reports whether this profile has an unresolved request to target.
func (p *Profile) HasOutgoingRequest(target string) bool {
	return containsID(p.PendingRequests, target)
}

// IsMemberOf reports whether the profile lists the community.
func (p *Profile) IsMemberOf(communityID string) bool {
	return containsID(p.Communities, communityID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
