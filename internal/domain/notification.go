package domain

import "time"

// Notification is the durable record behind every live push. Type carries
// the namespaced event name (admin:* or user:*); the prefix decides which
// audience the record belongs to. UserID is nil for admin-only notices
// about guest activity. Type, Message and UserID never change after
// creation; Read only ever flips false -> true.
type Notification struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"column:user_id" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Type      string    `gorm:"not null" json:"type"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
