package domains

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type Service struct {
	domains DomainRepository
	notifs  Notifier
}

func NewService(domains DomainRepository, notifs Notifier) *Service {
	return &Service{domains: domains, notifs: notifs}
}

// Create stores a pending domain request and notifies the moderation feed.
// Guests may submit too, in which case only admins hear about it.
func (s *Service) Create(ctx context.Context, req CreateDomainRequest, userID *int64) (*domain.Domain, error) {
	d := &domain.Domain{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.DomainStatusPending,
		UserID:      userID,
	}
	if err := s.domains.Create(ctx, d); err != nil {
		return nil, err
	}

	who := "Guest"
	if userID != nil {
		who = fmt.Sprintf("User %d", *userID)
	}
	adminMsg := fmt.Sprintf("%s requested to add domain %q", who, d.Name)
	if err := s.notifs.Send(ctx, notifications.AudienceAdmin, notifications.EventAdminDomainRequest, adminMsg, userID, d); err != nil {
		return nil, err
	}

	if userID != nil {
		userMsg := fmt.Sprintf("Your domain %q was submitted for review.", d.Name)
		if err := s.notifs.Send(ctx, notifications.AudienceUser(*userID), notifications.EventUserDomainRequested, userMsg, userID, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// List returns approved domains only. Pending and blocked entries never
// reach the public catalog.
func (s *Service) List(ctx context.Context, page, limit int) (*ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := s.domains.GetApproved(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ListResponse{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  totalPages,
		TotalItems:  total,
		Data:        items,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Domain, error) {
	d, err := s.domains.GetApprovedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
