package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"domainsmarket/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) DB() *gorm.DB {
	return r.db
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEmailExcept finds an admin with the given email other than id; used
// for email-conflict checks on update.
func (r *AdminRepository) GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).
		Where("email = ? AND id <> ?", strings.TrimSpace(strings.ToLower(email)), id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetAll(ctx context.Context) ([]domain.Admin, error) {
	var admins []domain.Admin
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) Update(ctx context.Context, a *domain.Admin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Admin{}, id).Error
}
