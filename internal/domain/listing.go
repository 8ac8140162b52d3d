package domain

import "time"

// Domain listing statuses. A listing stays pending until an admin verifies
// it; verified listings can be blocked again by setting the status back to 0.
const (
	DomainStatusPending  = 0
	DomainStatusApproved = 1
)

// Domain is a marketplace listing for an internet domain name. UserID is
// nil for guest submissions.
type Domain struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Status      int       `gorm:"default:0" json:"status"`
	Description string    `json:"description"`
	Images      MediaList `gorm:"serializer:json" json:"images"`
	Videos      MediaList `gorm:"serializer:json" json:"videos"`
	UserID      *int64    `gorm:"column:user_id" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Domain) TableName() string {
	return "domains"
}
