package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
	"domainsmarket/internal/pkg/storage"
)

// Profile and listing media limits.
const (
	maxProfileImages = 3
	maxProfileVideos = 2
	maxListingImages = 1
	maxListingVideos = 1
)

type Service struct {
	users   UserRepository
	domains DomainRepository
	media   MediaStore
	mail    Mailer
	notifs  Notifier
}

func NewService(users UserRepository, domains DomainRepository, media MediaStore, mail Mailer, notifs Notifier) *Service {
	return &Service{users: users, domains: domains, media: media, mail: mail, notifs: notifs}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Email: req.Email, Password: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	// The account exists either way; mail trouble is not the user's problem.
	if err := s.mail.SendWelcome(u.Email); err != nil {
		log.Warn().Err(err).Str("email", u.Email).Msg("welcome mail failed")
	}

	return u, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*domain.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != "" && *in.Email != u.Email {
		if _, err := s.users.GetByEmailExcept(ctx, *in.Email, userID); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		u.Email = *in.Email
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}

	u.Images, err = s.applyMedia(ctx, "users/images", u.Images, in.Images, in.DeletedImages, maxProfileImages, ErrTooManyImages)
	if err != nil {
		return nil, err
	}
	u.Videos, err = s.applyMedia(ctx, "users/videos", u.Videos, in.Videos, in.DeletedVideos, maxProfileVideos, ErrTooManyVideos)
	if err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListDomains(ctx context.Context, userID int64, status *int) ([]domain.Domain, error) {
	return s.domains.GetByUser(ctx, userID, status)
}

func (s *Service) GetDomain(ctx context.Context, userID, domainID int64) (*domain.Domain, error) {
	d, err := s.domains.GetOneByUser(ctx, userID, domainID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return d, nil
}

// UpdateDomain edits one of the caller's own listings and notifies both the
// moderation feed and the caller's feed.
func (s *Service) UpdateDomain(ctx context.Context, userID, domainID int64, in UpdateDomainInput) (*domain.Domain, error) {
	d, err := s.GetDomain(ctx, userID, domainID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}

	d.Images, err = s.applyMedia(ctx, "domains/images", d.Images, in.Images, in.DeletedImages, maxListingImages, ErrTooManyImages)
	if err != nil {
		return nil, err
	}
	d.Videos, err = s.applyMedia(ctx, "domains/videos", d.Videos, in.Videos, in.DeletedVideos, maxListingVideos, ErrTooManyVideos)
	if err != nil {
		return nil, err
	}

	if err := s.domains.Update(ctx, d); err != nil {
		return nil, err
	}

	adminMsg := fmt.Sprintf("User %d updated domain %q", userID, d.Name)
	if err := s.notifs.Send(ctx, notifications.AudienceAdmin, notifications.EventAdminDomainUpdatedByUser, adminMsg, &userID, d); err != nil {
		return nil, err
	}
	userMsg := fmt.Sprintf("Your domain %q was updated.", d.Name)
	if err := s.notifs.Send(ctx, notifications.AudienceUser(userID), notifications.EventUserDomainUpdatedByUser, userMsg, &userID, d); err != nil {
		return nil, err
	}

	return d, nil
}

// DeleteDomain removes one of the caller's own listings along with its
// stored media, then notifies both feeds.
func (s *Service) DeleteDomain(ctx context.Context, userID, domainID int64) error {
	d, err := s.GetDomain(ctx, userID, domainID)
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, append(d.Images, d.Videos...))

	if err := s.domains.Delete(ctx, d.ID); err != nil {
		return err
	}

	adminMsg := fmt.Sprintf("User %d deleted domain %q", userID, d.Name)
	if err := s.notifs.Send(ctx, notifications.AudienceAdmin, notifications.EventAdminDomainDeletedByUser, adminMsg, &userID, d); err != nil {
		return err
	}
	userMsg := fmt.Sprintf("Your domain %q was deleted.", d.Name)
	return s.notifs.Send(ctx, notifications.AudienceUser(userID), notifications.EventUserDomainDeletedByUser, userMsg, &userID, d)
}

// applyMedia removes the requested objects, enforces the slot limit and
// uploads the new files.
func (s *Service) applyMedia(ctx context.Context, folder string, current domain.MediaList, uploads []storage.Upload, deleted []string, limit int, limitErr error) (domain.MediaList, error) {
	kept, removed := current.Without(deleted)
	s.deleteMedia(ctx, removed)

	if len(kept)+len(uploads) > limit {
		return nil, limitErr
	}

	for _, up := range uploads {
		url, key, err := s.media.Upload(ctx, folder, up.Filename, up.Reader, up.ContentType)
		if err != nil {
			return nil, err
		}
		kept = append(kept, domain.MediaObject{URL: url, Key: key})
	}
	return kept, nil
}

func (s *Service) deleteMedia(ctx context.Context, objects domain.MediaList) {
	for _, obj := range objects {
		if err := s.media.Delete(ctx, obj.Key); err != nil {
			log.Warn().Err(err).Str("key", obj.Key).Msg("media delete failed")
		}
	}
}
