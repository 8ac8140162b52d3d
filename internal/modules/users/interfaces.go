package users

import (
	"context"
	"io"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type DomainRepository interface {
	GetByUser(ctx context.Context, userID int64, status *int) ([]domain.Domain, error)
	GetOneByUser(ctx context.Context, userID, domainID int64) (*domain.Domain, error)
	Update(ctx context.Context, d *domain.Domain) error
	Delete(ctx context.Context, id int64) error
}

type MediaStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (url, key string, err error)
	Delete(ctx context.Context, key string) error
}

type Mailer interface {
	SendWelcome(to string) error
}

type Notifier interface {
	Send(ctx context.Context, audience notifications.Audience, event notifications.Event, message string, ownerUserID *int64, data any) error
}
