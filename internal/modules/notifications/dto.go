package notifications

import "domainsmarket/internal/domain"

// ListResponse is the paginated feed shape the frontend consumes.
type ListResponse struct {
	CurrentPage int                   `json:"currentPage"`
	Limit       int                   `json:"limit"`
	UnseenCount int64                 `json:"unseenCount"`
	TotalPages  int                   `json:"totalPages"`
	TotalItems  int64                 `json:"totalItems"`
	Data        []domain.Notification `json:"data"`
}
