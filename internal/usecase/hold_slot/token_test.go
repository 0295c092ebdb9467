package hold_slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHoldToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		token := newHoldToken(now)
		assert.Regexp(t, `^hold_1773144000000_[0-9a-f]{32}$`, token)
	})

	t.Run("unique per call", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token := newHoldToken(now)
			assert.False(t, seen[token], "duplicate token %s", token)
			seen[token] = true
		}
	})
}

func TestNewMockHoldToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "hold_1773144000000_MOCK", newMockHoldToken(now))
}
