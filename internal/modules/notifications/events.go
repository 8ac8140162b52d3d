package notifications

import (
	"strconv"
	"strings"
)

// Event is a namespaced event name. The part before the first ':' is the
// namespace and decides whether a record belongs to the admin feed or a
// user's feed. The string values are the wire contract with the frontend
// and must not change.
type Event string

const (
	EventUserConnected    Event = "user:connected"
	EventUserDisconnected Event = "user:disconnected"

	EventAdminDomainRequest        Event = "admin:domain_request"
	EventAdminDomainUpdatedByAdmin Event = "admin:domain_updated_by_admin"
	EventAdminDomainUpdatedByUser  Event = "admin:domain_updated_by_user"
	EventAdminDomainDeletedByAdmin Event = "admin:domain_deleted_by_admin"
	EventAdminDomainDeletedByUser  Event = "admin:domain_deleted_by_user"

	EventUserDomainRequested      Event = "user:domain_requested"
	EventUserDomainUpdatedByAdmin Event = "user:domain_updated_by_admin"
	EventUserDomainUpdatedByUser  Event = "user:domain_updated_by_user"
	EventUserDomainDeletedByAdmin Event = "user:domain_deleted_by_admin"
	EventUserDomainDeletedByUser  Event = "user:domain_deleted_by_user"
)

const (
	NamespaceAdmin = "admin"
	NamespaceUser  = "user"
)

// Namespace returns the part of the event name before the first ':'.
func (e Event) Namespace() string {
	name := string(e)
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i]
	}
	return name
}

// Audience is a delivery target: the fixed admin room or one user's private
// room. Distinct user ids always map to distinct audiences.
type Audience string

const AudienceAdmin Audience = "admin"

func AudienceUser(userID int64) Audience {
	return Audience("user:" + strconv.FormatInt(userID, 10))
}
