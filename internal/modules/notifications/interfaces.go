package notifications

import (
	"context"

	"domainsmarket/internal/domain"
)

// Store is the durable record store behind dispatch and the REST feed.
type Store interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByNamespace(ctx context.Context, namespace string, ownerID *int64, limit, offset int) ([]domain.Notification, error)
	CountByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error)
	CountUnread(ctx context.Context, namespace string, ownerID *int64) (int64, error)
	MarkRead(ctx context.Context, id int64) (*domain.Notification, error)
	DeleteByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error)
}

// Router pushes an event to everyone subscribed to an audience.
type Router interface {
	Emit(audience Audience, event Event, payload any)
}
