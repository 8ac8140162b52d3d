package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/pkg/jwt"
)

const resetCodeTTL = 15 * time.Minute

type Service struct {
	users       UserRepository
	admins      AdminRepository
	userTokens  UserTokenRepository
	adminTokens AdminTokenRepository
	resetCodes  ResetCodeRepository
	tokens      TokenIssuer
	mail        Mailer
}

func NewService(
	users UserRepository,
	admins AdminRepository,
	userTokens UserTokenRepository,
	adminTokens AdminTokenRepository,
	resetCodes ResetCodeRepository,
	tokens TokenIssuer,
	mail Mailer,
) *Service {
	return &Service{
		users:       users,
		admins:      admins,
		userTokens:  userTokens,
		adminTokens: adminTokens,
		resetCodes:  resetCodes,
		tokens:      tokens,
		mail:        mail,
	}
}

// LoginUser verifies credentials and issues a JWT. The token table keeps one
// row per user, so a second login replaces the previous session token.
func (s *Service) LoginUser(ctx context.Context, req LoginRequest) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, jwt.RoleUser)
	if err != nil {
		return "", nil, err
	}
	if err := s.userTokens.Upsert(ctx, u.ID, token); err != nil {
		return "", nil, err
	}

	now := time.Now()
	u.LastSeen = &now
	if err := s.users.Update(ctx, u); err != nil {
		log.Warn().Err(err).Int64("user_id", u.ID).Msg("last seen update failed")
	}

	return token, u, nil
}

func (s *Service) LoginAdmin(ctx context.Context, req LoginRequest) (string, *domain.Admin, error) {
	a, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(a.ID, jwt.RoleAdmin)
	if err != nil {
		return "", nil, err
	}
	if err := s.adminTokens.Upsert(ctx, a.ID, token); err != nil {
		return "", nil, err
	}
	return token, a, nil
}

// LogoutUser drops the stored session token. A token that was never stored
// is not an error; logout is idempotent.
func (s *Service) LogoutUser(ctx context.Context, token string) error {
	return s.userTokens.DeleteByToken(ctx, token)
}

func (s *Service) LogoutAdmin(ctx context.Context, token string) error {
	return s.adminTokens.DeleteByToken(ctx, token)
}

// ForgotPassword mails the user a 6-digit code valid for fifteen minutes.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.resetCodes.DeleteExpired(ctx); err != nil {
		log.Warn().Err(err).Msg("reset code purge failed")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	rec := &domain.PasswordResetCode{
		UserID:    u.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := s.resetCodes.Create(ctx, rec); err != nil {
		return err
	}

	return s.mail.SendPasswordReset(u.Email, code)
}

// ResetPassword checks the latest unexpired code and rehashes the password.
// All codes for the user are dropped after a successful reset.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	rec, err := s.resetCodes.LatestValid(ctx, u.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCode
		}
		return err
	}
	if rec.Code != req.Code {
		return ErrInvalidCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	if err := s.resetCodes.DeleteForUser(ctx, u.ID); err != nil {
		log.Warn().Err(err).Int64("user_id", u.ID).Msg("reset code cleanup failed")
	}
	return nil
}
