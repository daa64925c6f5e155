package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileEdgeChecks(t *testing.T) {
	p := &Profile{
		ID:              "u1",
		Friends:         []string{"u2"},
		FriendRequests:  []string{"u3"},
		PendingRequests: []string{"u4"},
		Communities:     []string{"c1"},
	}

	assert.True(t, p.HasFriend("u2"))
	assert.False(t, p.HasFriend("u3"))

	assert.True(t, p.HasIncomingRequest("u3"))
	assert.False(t, p.HasIncomingRequest("u2"))

	assert.True(t, p.HasOutgoingRequest("u4"))
	assert.False(t, p.HasOutgoingRequest("u3"))

	assert.True(t, p.IsMemberOf("c1"))
	assert.False(t, p.IsMemberOf("c2"))
}

func TestProfileEmptyEdges(t *testing.T) {
	p := &Profile{ID: "u1"}

	assert.False(t, p.HasFriend("u2"))
	assert.False(t, p.HasIncomingRequest("u2"))
	assert.False(t, p.HasOutgoingRequest("u2"))
	assert.False(t, p.IsMemberOf("c1"))
}
