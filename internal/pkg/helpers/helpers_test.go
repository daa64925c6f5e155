package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseLimitParam(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", DefaultListLimit},
		{"limit=5", 5},
		{"limit=100", 100},
		{"limit=500", MaxListLimit},
		{"limit=0", DefaultListLimit},
		{"limit=-3", DefaultListLimit},
		{"limit=abc", DefaultListLimit},
	}

	for _, tt := range tests {
		c := limitContext(t, tt.query)
		assert.Equal(t, tt.expected, ParseLimitParam(c, DefaultListLimit), "query %q", tt.query)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, ParseDuration("15m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("bogus", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}
