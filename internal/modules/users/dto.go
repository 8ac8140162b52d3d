package users

import "domainsmarket/internal/pkg/storage"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileInput struct {
	Email         *string
	Password      *string
	Images        []storage.Upload
	Videos        []storage.Upload
	DeletedImages []string
	DeletedVideos []string
}

type UpdateDomainInput struct {
	Name          *string
	Description   *string
	Images        []storage.Upload
	Videos        []storage.Upload
	DeletedImages []string
	DeletedVideos []string
}
