package domain

import "time"

// UserToken holds the single active session token per user; login upserts
// it and logout deletes it.
type UserToken struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Token     string    `gorm:"not null" json:"token"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserToken) TableName() string {
	return "user_tokens"
}

type AdminToken struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	AdminID   int64     `gorm:"column:admin_id;uniqueIndex;not null" json:"admin_id"`
	Token     string    `gorm:"not null" json:"token"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AdminToken) TableName() string {
	return "admin_tokens"
}
