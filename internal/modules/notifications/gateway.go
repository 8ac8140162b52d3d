package notifications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"domainsmarket/internal/pkg/metrics"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// Gateway owns the lifecycle of every live connection: classify on connect,
// subscribe to the right room, keep presence up to date and tell admins who
// came and went.
type Gateway struct {
	hub      *Hub
	presence *Presence
}

func NewGateway(hub *Hub, presence *Presence) *Gateway {
	return &Gateway{hub: hub, presence: presence}
}

// Handle upgrades GET /ws?role=admin|user&userId=N. A connection that does
// not classify cleanly (unknown role, bad user id) stays open but joins no
// room: live events are a best-effort layer, so bad metadata degrades to an
// inert connection instead of an error.
func (g *Gateway) Handle(c *gin.Context) {
	role := c.Query("role")
	rawUserID := c.Query("userId")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := newConnection(ws)
	metrics.LiveConnections.Inc()

	switch {
	case role == "admin":
		g.hub.JoinAdmin(conn)
		log.Debug().Msg("admin connected")

	case role == "user":
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			log.Debug().Str("userId", rawUserID).Msg("unclassifiable user connection")
			break
		}
		g.hub.JoinUser(conn, userID)
		g.presence.MarkConnected(userID)
		g.hub.Emit(AudienceAdmin, EventUserConnected, userID)
		log.Debug().Int64("user_id", userID).Msg("user connected")

	default:
		log.Debug().Str("role", role).Msg("unclassifiable connection")
	}

	go g.hub.writePump(conn)
	g.hub.readPump(conn) // blocks until disconnect

	g.disconnect(conn)
}

func (g *Gateway) disconnect(conn *connection) {
	metrics.LiveConnections.Dec()

	// Only the state recorded at classification decides what to undo here;
	// spoofed disconnect metadata cannot undercount presence.
	wasUser := conn.joined && conn.userID > 0
	g.hub.leave(conn)

	if !wasUser {
		return
	}

	if remaining := g.presence.MarkDisconnected(conn.userID); remaining == 0 {
		g.hub.Emit(AudienceAdmin, EventUserDisconnected, conn.userID)
		log.Debug().Int64("user_id", conn.userID).Msg("user fully disconnected")
	}
}
