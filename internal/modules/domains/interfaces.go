package domains

import (
	"context"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type DomainRepository interface {
	Create(ctx context.Context, d *domain.Domain) error
	GetApprovedByID(ctx context.Context, id int64) (*domain.Domain, error)
	GetApproved(ctx context.Context, limit, offset int) ([]domain.Domain, int64, error)
}

type Notifier interface {
	Send(ctx context.Context, audience notifications.Audience, event notifications.Event, message string, ownerUserID *int64, data any) error
}
