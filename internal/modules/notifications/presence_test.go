package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceCountsPerConnection(t *testing.T) {
	p := NewPresence()

	p.MarkConnected(7)
	p.MarkConnected(7)
	assert.True(t, p.IsOnline(7))

	// Closing one of two tabs keeps the user online.
	remaining := p.MarkDisconnected(7)
	assert.Equal(t, 1, remaining)
	assert.True(t, p.IsOnline(7))

	remaining = p.MarkDisconnected(7)
	assert.Equal(t, 0, remaining)
	assert.False(t, p.IsOnline(7))
}

func TestPresenceNeverGoesNegative(t *testing.T) {
	p := NewPresence()

	assert.Equal(t, 0, p.MarkDisconnected(42))
	assert.Equal(t, 0, p.MarkDisconnected(42))
	assert.False(t, p.IsOnline(42))

	// A later connect starts from a clean slate.
	p.MarkConnected(42)
	assert.True(t, p.IsOnline(42))
	assert.Equal(t, 0, p.MarkDisconnected(42))
}

func TestPresenceIgnoresInvalidIDs(t *testing.T) {
	p := NewPresence()

	p.MarkConnected(0)
	p.MarkConnected(-3)
	assert.Empty(t, p.ListOnline())
}

func TestPresenceListOnline(t *testing.T) {
	p := NewPresence()

	p.MarkConnected(1)
	p.MarkConnected(2)
	p.MarkConnected(2)
	p.MarkConnected(3)
	p.MarkDisconnected(3)

	assert.ElementsMatch(t, []int64{1, 2}, p.ListOnline())
}
