package dto

import (
	"time"

	"github.com/lucasmb/orkinet/internal/app/models"
)

// ProfileResponse is the public representation of a profile
type ProfileResponse struct {
	ID              string    `json:"id" example:"1"`
	DisplayName     string    `json:"displayName" example:"Maria Silva"`
	Email           *string   `json:"email,omitempty"`
	PhotoURL        *string   `json:"photoUrl,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	BirthDate       *string   `json:"birthDate,omitempty" example:"1994-03-12"`
	Gender          *string   `json:"gender,omitempty"`
	Relationship    *string   `json:"relationship,omitempty"`
	Country         *string   `json:"country,omitempty" example:"Brasil"`
	Friends         []string  `json:"friends"`
	FriendRequests  []string  `json:"friendRequests"`
	PendingRequests []string  `json:"pendingRequests"`
	Communities     []string  `json:"communities"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProfileSummaryResponse is the compact representation used in lists
type ProfileSummaryResponse struct {
	ID          string  `json:"id" example:"1"`
	DisplayName string  `json:"displayName" example:"Maria Silva"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// UpdateProfileRequest carries the editable profile fields. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"displayName,omitempty" binding:"omitempty,min=2,max=80"`
	PhotoURL     *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
	Bio          *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
	BirthDate    *string `json:"birthDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Gender       *string `json:"gender,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Country      *string `json:"country,omitempty" binding:"omitempty,max=80"`
}

// ToProfileResponse maps a profile model to its response representation
func ToProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:              p.ID,
		DisplayName:     p.DisplayName,
		Email:           p.Email,
		PhotoURL:        p.PhotoURL,
		Bio:             p.Bio,
		BirthDate:       p.BirthDate,
		Gender:          p.Gender,
		Relationship:    p.Relationship,
		Country:         p.Country,
		Friends:         emptyIfNil(p.Friends),
		FriendRequests:  emptyIfNil(p.FriendRequests),
		PendingRequests: emptyIfNil(p.PendingRequests),
		Communities:     emptyIfNil(p.Communities),
		CreatedAt:       p.CreatedAt,
	}
}

// ToProfileSummaryResponse maps a profile model to its compact form
func ToProfileSummaryResponse(p *models.Profile) *ProfileSummaryResponse {
	return &ProfileSummaryResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		Country:     p.Country,
	}
}

// ToProfileSummaryResponses maps a slice of profiles to compact forms
func ToProfileSummaryResponses(profiles []*models.Profile) []*ProfileSummaryResponse {
	out := make([]*ProfileSummaryResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToProfileSummaryResponse(p))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
