package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	tests := []struct {
		category CommunityCategory
		valid    bool
	}{
		{CategoryGames, true},
		{CategoryOther, true},
		{CategoryComputersInternet, true},
		{CommunityCategory("games"), false},
		{CommunityCategory("MUSIC"), false},
		{CommunityCategory(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.category.IsValid(), "category %q", tt.category)
	}
}

func TestAllCategoriesAreValid(t *testing.T) {
	assert.Len(t, AllCategories, 15)
	for _, c := range AllCategories {
		assert.True(t, c.IsValid())
	}
}

func TestCommunityRoleOf(t *testing.T) {
	c := &Community{
		CreatedBy:  "owner",
		Members:    []string{"owner", "mod", "member"},
		Moderators: []string{"owner", "mod"},
	}

	assert.Equal(t, RoleOwner, c.RoleOf("owner"))
	assert.Equal(t, RoleModerator, c.RoleOf("mod"))
	assert.Equal(t, RoleMember, c.RoleOf("member"))
	// Non-members default to the plain member role; callers gate on HasMember
	assert.Equal(t, RoleMember, c.RoleOf("stranger"))
}

func TestCommunityMembershipChecks(t *testing.T) {
	c := &Community{
		Members:    []string{"a", "b"},
		Moderators: []string{"a"},
	}

	assert.True(t, c.HasMember("a"))
	assert.True(t, c.HasMember("b"))
	assert.False(t, c.HasMember("c"))
	assert.True(t, c.HasModerator("a"))
	assert.False(t, c.HasModerator("b"))
}
