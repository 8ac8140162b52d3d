package notifications

import (
	"context"
	"time"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/pkg/metrics"
)

// Payload is the live event body. Timestamp is the creation time of the
// record the push corresponds to.
type Payload struct {
	UserID    *int64    `json:"userId"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Service is the single entry point for notifying anyone of anything: it
// persists the record, then pushes the live event to the audience.
type Service struct {
	store  Store
	router Router
}

func NewService(store Store, router Router) *Service {
	return &Service{store: store, router: router}
}

// Send persists a notification record and then emits the live event. The
// order is a correctness requirement: a client that reconnects and
// re-fetches its list must never have seen a push without a matching
// record. If persistence fails the push is skipped and the error returned;
// push delivery itself is best-effort and never fails the call.
func (s *Service) Send(ctx context.Context, audience Audience, event Event, message string, ownerUserID *int64, data any) error {
	n := &domain.Notification{
		UserID:  ownerUserID,
		Type:    string(event),
		Message: message,
	}
	if err := s.store.Create(ctx, n); err != nil {
		return err
	}

	s.router.Emit(audience, event, Payload{
		UserID:    ownerUserID,
		Message:   message,
		Data:      data,
		Timestamp: n.CreatedAt,
	})
	metrics.NotificationsDispatched.WithLabelValues(string(event)).Inc()
	return nil
}

// List returns one page of a namespace-scoped feed, unread first, newest
// first, together with the unread count for the same scope.
func (s *Service) List(ctx context.Context, namespace string, ownerID *int64, page, limit int) (*ListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	total, err := s.store.CountByNamespace(ctx, namespace, ownerID)
	if err != nil {
		return nil, err
	}

	data, err := s.store.ListByNamespace(ctx, namespace, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	unseen, err := s.store.CountUnread(ctx, namespace, ownerID)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ListResponse{
		CurrentPage: page,
		Limit:       limit,
		UnseenCount: unseen,
		TotalPages:  totalPages,
		TotalItems:  total,
		Data:        data,
	}, nil
}

// MarkRead is idempotent: re-reading a read record succeeds unchanged.
func (s *Service) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.store.MarkRead(ctx, id)
}

// Clear deletes every record in the scope and reports how many existed.
func (s *Service) Clear(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	return s.store.DeleteByNamespace(ctx, namespace, ownerID)
}
