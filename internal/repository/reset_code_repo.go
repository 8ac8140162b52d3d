package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"domainsmarket/internal/domain"
)

type ResetCodeRepository struct {
	db *gorm.DB
}

func NewResetCodeRepository(db *gorm.DB) *ResetCodeRepository {
	return &ResetCodeRepository{db: db}
}

func (r *ResetCodeRepository) Create(ctx context.Context, c *domain.PasswordResetCode) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// LatestValid returns the newest unexpired code for the user.
func (r *ResetCodeRepository) LatestValid(ctx context.Context, userID int64) (*domain.PasswordResetCode, error) {
	var c domain.PasswordResetCode
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ResetCodeRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&domain.PasswordResetCode{}).Error
}

func (r *ResetCodeRepository) DeleteForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.PasswordResetCode{}).Error
}
