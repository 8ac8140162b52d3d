package notifications

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// envelope is the frame pushed to clients.
type envelope struct {
	Event   Event `json:"event"`
	Payload any   `json:"payload,omitempty"`
}

// connection is a single live websocket client. room/userID are set once
// during classification and read on disconnect; the disconnect path never
// trusts request metadata.
type connection struct {
	ws     *websocket.Conn
	send   chan []byte
	room   Audience
	joined bool
	userID int64
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// Hub routes events to rooms. Delivery is fire-and-forget: at most once per
// currently subscribed connection, no retry, no acknowledgement.
type Hub struct {
	mu    sync.RWMutex
	rooms map[Audience]map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[Audience]map[*connection]struct{})}
}

// JoinAdmin subscribes a connection to the shared admin room.
func (h *Hub) JoinAdmin(c *connection) {
	h.join(c, AudienceAdmin)
}

// JoinUser subscribes a connection to the private room for one user.
func (h *Hub) JoinUser(c *connection, userID int64) {
	c.userID = userID
	h.join(c, AudienceUser(userID))
}

func (h *Hub) join(c *connection, room Audience) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*connection]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.room = room
	c.joined = true
}

func (h *Hub) leave(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !c.joined {
		return
	}
	if members, ok := h.rooms[c.room]; ok {
		if _, present := members[c]; present {
			delete(members, c)
			close(c.send)
		}
		if len(members) == 0 {
			delete(h.rooms, c.room)
		}
	}
}

// Emit delivers event/payload to every connection in the room. An empty
// room is a silent no-op: the persisted record is the durable fallback for
// anyone offline.
func (h *Hub) Emit(audience Audience, event Event, payload any) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", string(event)).Msg("marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[audience] {
		select {
		case c.send <- data:
		default:
			// slow client, skip
		}
	}
}

// readPump blocks until the client goes away. Inbound frames are only used
// to keep the read deadline fresh; this transport is one-way.
func (h *Hub) readPump(c *connection) {
	defer c.ws.Close()

	c.ws.SetReadLimit(maxMsgSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
