package repository

import (
	"context"

	"gorm.io/gorm"

	"domainsmarket/internal/domain"
)

type DomainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

func (r *DomainRepository) DB() *gorm.DB {
	return r.db
}

func (r *DomainRepository) Create(ctx context.Context, d *domain.Domain) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DomainRepository) GetByID(ctx context.Context, id int64) (*domain.Domain, error) {
	var d domain.Domain
	err := r.db.WithContext(ctx).Preload("User").First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetApprovedByID is the public storefront lookup; pending and blocked
// listings are invisible there.
func (r *DomainRepository) GetApprovedByID(ctx context.Context, id int64) (*domain.Domain, error) {
	var d domain.Domain
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND status = ?", id, domain.DomainStatusApproved).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DomainRepository) GetApproved(ctx context.Context, limit, offset int) ([]domain.Domain, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Domain{}).
		Where("status = ?", domain.DomainStatusApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var domains []domain.Domain
	err := q.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&domains).Error
	if err != nil {
		return nil, 0, err
	}
	return domains, total, nil
}

// GetAll returns every listing, optionally filtered by status. Admin-only.
func (r *DomainRepository) GetAll(ctx context.Context, status *int) ([]domain.Domain, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var domains []domain.Domain
	err := q.Find(&domains).Error
	return domains, err
}

func (r *DomainRepository) GetByUser(ctx context.Context, userID int64, status *int) ([]domain.Domain, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var domains []domain.Domain
	err := q.Find(&domains).Error
	return domains, err
}

// GetOneByUser enforces ownership: a listing belonging to someone else is
// indistinguishable from a missing one.
func (r *DomainRepository) GetOneByUser(ctx context.Context, userID, domainID int64) (*domain.Domain, error) {
	var d domain.Domain
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", domainID, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DomainRepository) Update(ctx context.Context, d *domain.Domain) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DomainRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Domain{}, id).Error
}
