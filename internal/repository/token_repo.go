package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"domainsmarket/internal/domain"
)

type UserTokenRepository struct {
	db *gorm.DB
}

func NewUserTokenRepository(db *gorm.DB) *UserTokenRepository {
	return &UserTokenRepository{db: db}
}

// Upsert keeps at most one token row per user.
func (r *UserTokenRepository) Upsert(ctx context.Context, userID int64, token string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token"}),
	}).Create(&domain.UserToken{UserID: userID, Token: token}).Error
}

func (r *UserTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.UserToken{}).Error
}

func (r *UserTokenRepository) GetAll(ctx context.Context) ([]domain.UserToken, error) {
	var tokens []domain.UserToken
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

func (r *UserTokenRepository) GetByID(ctx context.Context, id int64) (*domain.UserToken, error) {
	var t domain.UserToken
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *UserTokenRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.UserToken{}, id).Error
}

type AdminTokenRepository struct {
	db *gorm.DB
}

func NewAdminTokenRepository(db *gorm.DB) *AdminTokenRepository {
	return &AdminTokenRepository{db: db}
}

func (r *AdminTokenRepository) Upsert(ctx context.Context, adminID int64, token string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token"}),
	}).Create(&domain.AdminToken{AdminID: adminID, Token: token}).Error
}

func (r *AdminTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.AdminToken{}).Error
}

func (r *AdminTokenRepository) GetAll(ctx context.Context) ([]domain.AdminToken, error) {
	var tokens []domain.AdminToken
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

func (r *AdminTokenRepository) GetByID(ctx context.Context, id int64) (*domain.AdminToken, error) {
	var t domain.AdminToken
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *AdminTokenRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AdminToken{}, id).Error
}
