package auth

import (
	"context"

	"domainsmarket/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type UserTokenRepository interface {
	Upsert(ctx context.Context, userID int64, token string) error
	DeleteByToken(ctx context.Context, token string) error
}

type AdminTokenRepository interface {
	Upsert(ctx context.Context, adminID int64, token string) error
	DeleteByToken(ctx context.Context, token string) error
}

type ResetCodeRepository interface {
	Create(ctx context.Context, c *domain.PasswordResetCode) error
	LatestValid(ctx context.Context, userID int64) (*domain.PasswordResetCode, error)
	DeleteExpired(ctx context.Context) error
	DeleteForUser(ctx context.Context, userID int64) error
}

type TokenIssuer interface {
	GenerateToken(id int64, role string) (string, error)
}

type Mailer interface {
	SendPasswordReset(to, code string) error
}
