package domain

import "time"

type User struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Images    MediaList  `gorm:"serializer:json" json:"images"`
	Videos    MediaList  `gorm:"serializer:json" json:"videos"`
	LastSeen  *time.Time `gorm:"column:last_seen" json:"lastSeen"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
