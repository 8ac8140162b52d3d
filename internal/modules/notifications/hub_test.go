package notifications

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvFrame(t *testing.T, c *connection) envelope {
	t.Helper()
	select {
	case data := <-c.send:
		var env envelope
		require.NoError(t, json.Unmarshal(data, &env))
		return env
	default:
		t.Fatal("expected a frame, got none")
		return envelope{}
	}
}

func assertNoFrame(t *testing.T, c *connection) {
	t.Helper()
	select {
	case data := <-c.send:
		t.Fatalf("unexpected frame: %s", data)
	default:
	}
}

func TestEmitReachesOnlyTheTargetRoom(t *testing.T) {
	hub := NewHub()

	adminConn := newConnection(nil)
	hub.JoinAdmin(adminConn)
	user7 := newConnection(nil)
	hub.JoinUser(user7, 7)
	user8 := newConnection(nil)
	hub.JoinUser(user8, 8)

	hub.Emit(AudienceUser(7), EventUserDomainRequested, "hello")

	env := recvFrame(t, user7)
	assert.Equal(t, EventUserDomainRequested, env.Event)
	assert.Equal(t, "hello", env.Payload)

	assertNoFrame(t, user8)
	assertNoFrame(t, adminConn)
}

func TestEmitToAdminRoomFansOut(t *testing.T) {
	hub := NewHub()

	a1 := newConnection(nil)
	a2 := newConnection(nil)
	hub.JoinAdmin(a1)
	hub.JoinAdmin(a2)
	user := newConnection(nil)
	hub.JoinUser(user, 1)

	hub.Emit(AudienceAdmin, EventAdminDomainRequest, nil)

	assert.Equal(t, EventAdminDomainRequest, recvFrame(t, a1).Event)
	assert.Equal(t, EventAdminDomainRequest, recvFrame(t, a2).Event)
	assertNoFrame(t, user)
}

func TestEmitToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub()
	// Must not panic or create the room.
	hub.Emit(AudienceUser(99), EventUserDomainUpdatedByAdmin, "x")

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Empty(t, hub.rooms)
}

func TestEmitSkipsSlowClients(t *testing.T) {
	hub := NewHub()

	slow := newConnection(nil)
	hub.JoinUser(slow, 4)
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("backlog")
	}

	// Full buffer: Emit must drop the frame instead of blocking.
	hub.Emit(AudienceUser(4), EventUserDomainDeletedByAdmin, "dropped")
	assert.Len(t, slow.send, cap(slow.send))
}

func TestLeaveClosesConnectionAndRoom(t *testing.T) {
	hub := NewHub()

	c := newConnection(nil)
	hub.JoinUser(c, 11)
	hub.leave(c)

	_, open := <-c.send
	assert.False(t, open, "send channel must be closed on leave")

	// Emitting afterwards must not panic on the closed channel.
	hub.Emit(AudienceUser(11), EventUserDomainRequested, "late")

	// Double leave is harmless.
	hub.leave(c)
}

func TestDistinctUsersGetDistinctRooms(t *testing.T) {
	assert.NotEqual(t, AudienceUser(1), AudienceUser(11))
	assert.NotEqual(t, AudienceUser(1), AudienceAdmin)
	assert.Equal(t, Audience("user:42"), AudienceUser(42))
}
