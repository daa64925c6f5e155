package models

import "time"

// CommunityCategory is one of the fixed community categories.
type CommunityCategory string

const (
	CategoryActivities        CommunityCategory = "ACTIVITIES"
	CategorySchools           CommunityCategory = "SCHOOLS"
	CategoryArtsEntertainment CommunityCategory = "ARTS_ENTERTAINMENT"
	CategoryBusiness          CommunityCategory = "BUSINESS"
	CategoryComputersInternet CommunityCategory = "COMPUTERS_INTERNET"
	CategoryGames             CommunityCategory = "GAMES"
	CategoryHealthWellness    CommunityCategory = "HEALTH_WELLNESS"
	CategoryHobbiesCrafts     CommunityCategory = "HOBBIES_CRAFTS"
	CategoryPeople            CommunityCategory = "PEOPLE"
	CategoryPlaces            CommunityCategory = "PLACES"
	CategoryReligionBeliefs   CommunityCategory = "RELIGION_BELIEFS"
	CategorySciences          CommunityCategory = "SCIENCES"
	CategorySports            CommunityCategory = "SPORTS"
	CategoryTravel            CommunityCategory = "TRAVEL"
	CategoryOther             CommunityCategory = "OTHER"
)

// AllCategories lists every valid community category.
var AllCategories = []CommunityCategory{
	CategoryActivities,
	CategorySchools,
	CategoryArtsEntertainment,
	CategoryBusiness,
	CategoryComputersInternet,
	CategoryGames,
	CategoryHealthWellness,
	CategoryHobbiesCrafts,
	CategoryPeople,
	CategoryPlaces,
	CategoryReligionBeliefs,
	CategorySciences,
	CategorySports,
	CategoryTravel,
	CategoryOther,
}

// IsValid reports whether the category is one of the fixed set.
func (c CommunityCategory) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// MemberRole tags a resolved community member with its role.
type MemberRole string

const (
	RoleOwner     MemberRole = "OWNER"
	RoleModerator MemberRole = "MODERATOR"
	RoleMember    MemberRole = "MEMBER"
)

// Community represents a community record based on the 'communities' table.
// Invariant for a well-formed record: creator is in Moderators, and
// Moderators is a subset of Members.
type Community struct {
	ID          string            `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	NameLower   string            `json:"-" db:"name_lower"` // Derived, used by name search
	Description string            `json:"description" db:"description"`
	Category    CommunityCategory `json:"category" db:"category"`
	IsPublic    bool              `json:"isPublic" db:"is_public"`
	PhotoURL    *string           `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedBy   string            `json:"createdBy" db:"created_by"` // Immutable owner id
	Members     []string          `json:"members" db:"members"`
	Moderators  []string          `json:"moderators" db:"moderators"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}

// HasMember reports whether userID is in the members set.
func (c *Community) HasMember(userID string) bool {
	return containsID(c.Members, userID)
}

// HasModerator reports whether userID is in the moderators set.
func (c *Community) HasModerator(userID string) bool {
	return containsID(c.Moderators, userID)
}

// RoleOf derives the role of a member id.
func (c *Community) RoleOf(userID string) MemberRole {
	switch {
	case userID == c.CreatedBy:
		return RoleOwner
	case c.HasModerator(userID):
		return RoleModerator
	default:
		return RoleMember
	}
}
