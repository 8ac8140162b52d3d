package repository

import (
	"context"

	"gorm.io/gorm"

	"domainsmarket/internal/domain"
)

// NotificationRepository is the durable side of the notification core. All
// scoped queries filter on the namespace prefix of the type column
// ("admin:%" or "user:%"), optionally narrowed to one owning user.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) DB() *gorm.DB {
	return r.db
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) scoped(ctx context.Context, namespace string, ownerID *int64) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("type LIKE ?", namespace+":%")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	return q
}

// ListByNamespace returns one page ordered unread-first, then newest-first.
func (r *NotificationRepository) ListByNamespace(ctx context.Context, namespace string, ownerID *int64, limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.scoped(ctx, namespace, ownerID).
		Preload("User").
		Order("read ASC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) CountByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	var count int64
	err := r.scoped(ctx, namespace, ownerID).Count(&count).Error
	return count, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	var count int64
	err := r.scoped(ctx, namespace, ownerID).Where("read = ?", false).Count(&count).Error
	return count, err
}

// MarkRead flips the read flag and returns the record. Marking an already
// read record again is a no-op success.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}

	if !n.Read {
		n.Read = true
		if err := r.db.WithContext(ctx).Model(&n).Update("read", true).Error; err != nil {
			return nil, err
		}
	}
	return &n, nil
}

// DeleteByNamespace removes every matching record and reports how many went
// away; zero is not an error.
func (r *NotificationRepository) DeleteByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	q := r.db.WithContext(ctx).Where("type LIKE ?", namespace+":%")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}

	res := q.Delete(&domain.Notification{})
	return res.RowsAffected, res.Error
}
