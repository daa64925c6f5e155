package dto

import (
	"time"

	"github.com/lucasmb/orkinet/internal/app/models"
)

// CreateCommunityRequest carries the fields for creating a community
type CreateCommunityRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=120" example:"Eu odeio acordar cedo"`
	Description string  `json:"description" binding:"required,max=4000"`
	Category    string  `json:"category" binding:"required" example:"GAMES"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
}

// UpdateCommunityRequest carries the editable community fields. Nil
// fields are left untouched.
type UpdateCommunityRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	Category    *string `json:"category,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty" binding:"omitempty,url"`
}

// MemberActionRequest identifies the target of a membership operation
type MemberActionRequest struct {
	UserID string `json:"userId" binding:"required" example:"2"`
}

// CommunityResponse is the public representation of a community
type CommunityResponse struct {
	ID          string    `json:"id" example:"10"`
	Name        string    `json:"name" example:"Eu odeio acordar cedo"`
	Description string    `json:"description"`
	Category    string    `json:"category" example:"GAMES"`
	IsPublic    bool      `json:"isPublic"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	CreatedBy   string    `json:"createdBy" example:"1"`
	Members     []string  `json:"members"`
	Moderators  []string  `json:"moderators"`
	MemberCount int       `json:"memberCount" example:"3"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityMemberResponse pairs a member profile with its role
type CommunityMemberResponse struct {
	Profile *ProfileSummaryResponse `json:"profile"`
	Role    string                  `json:"role" example:"moderator"`
}

// CategoryListResponse carries the available community categories
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ToCommunityResponse maps a community model to its response representation
func ToCommunityResponse(c *models.Community) *CommunityResponse {
	return &CommunityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    string(c.Category),
		IsPublic:    c.IsPublic,
		PhotoURL:    c.PhotoURL,
		CreatedBy:   c.CreatedBy,
		Members:     emptyIfNil(c.Members),
		Moderators:  emptyIfNil(c.Moderators),
		MemberCount: len(c.Members),
		CreatedAt:   c.CreatedAt,
	}
}

// ToCommunityResponses maps a slice of communities to responses
func ToCommunityResponses(communities []*models.Community) []*CommunityResponse {
	out := make([]*CommunityResponse, 0, len(communities))
	for _, c := range communities {
		out = append(out, ToCommunityResponse(c))
	}
	return out
}
