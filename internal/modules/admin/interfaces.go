package admin

import (
	"context"
	"io"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.Admin, error)
	GetAll(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, a *domain.Admin) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type DomainRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Domain, error)
	GetAll(ctx context.Context, status *int) ([]domain.Domain, error)
	Update(ctx context.Context, d *domain.Domain) error
	Delete(ctx context.Context, id int64) error
}

type UserTokenRepository interface {
	GetAll(ctx context.Context) ([]domain.UserToken, error)
	Delete(ctx context.Context, id int64) error
}

type AdminTokenRepository interface {
	GetAll(ctx context.Context) ([]domain.AdminToken, error)
	Delete(ctx context.Context, id int64) error
}

type MediaStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (url, key string, err error)
	Delete(ctx context.Context, key string) error
}

// PresenceReader exposes the live view of connected users for moderation
// endpoints.
type PresenceReader interface {
	ListOnline() []int64
	IsOnline(userID int64) bool
}

type Notifier interface {
	Send(ctx context.Context, audience notifications.Audience, event notifications.Event, message string, ownerUserID *int64, data any) error
}
