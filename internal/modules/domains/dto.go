package domains

import "domainsmarket/internal/domain"

type CreateDomainRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ListResponse struct {
	CurrentPage int             `json:"currentPage"`
	Limit       int             `json:"limit"`
	TotalPages  int             `json:"totalPages"`
	TotalItems  int64           `json:"totalItems"`
	Data        []domain.Domain `json:"data"`
}
