package admin

import (
	"domainsmarket/internal/domain"
	"domainsmarket/internal/pkg/storage"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateAdminRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type UpdateUserInput struct {
	Email    *string
	Password *string
}

type UpdateDomainInput struct {
	Name          *string
	Description   *string
	Status        *int
	Images        []storage.Upload
	Videos        []storage.Upload
	DeletedImages []string
	DeletedVideos []string
}

// UserWithPresence is a user row annotated with its live connection state.
type UserWithPresence struct {
	domain.User
	Online bool `json:"online"`
}

type UsersOverview struct {
	Users       []UserWithPresence `json:"users"`
	OnlineUsers []int64            `json:"onlineUsers"`
}
