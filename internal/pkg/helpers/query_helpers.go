package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultListLimit caps list endpoints when no limit is given
	DefaultListLimit = 20
	// MaxListLimit is the hard upper bound for any list endpoint
	MaxListLimit = 100
)

// ParseLimitParam reads the "limit" query parameter, clamping it to
// [1, MaxListLimit] and falling back to defaultLimit when absent or
// malformed.
func ParseLimitParam(c *gin.Context, defaultLimit int) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
