package admin

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

const (
	maxListingImages = 1
	maxListingVideos = 1
)

type Service struct {
	admins      AdminRepository
	users       UserRepository
	domains     DomainRepository
	userTokens  UserTokenRepository
	adminTokens AdminTokenRepository
	media       MediaStore
	presence    PresenceReader
	notifs      Notifier
}

func NewService(
	admins AdminRepository,
	users UserRepository,
	domains DomainRepository,
	userTokens UserTokenRepository,
	adminTokens AdminTokenRepository,
	media MediaStore,
	presence PresenceReader,
	notifs Notifier,
) *Service {
	return &Service{
		admins:      admins,
		users:       users,
		domains:     domains,
		userTokens:  userTokens,
		adminTokens: adminTokens,
		media:       media,
		presence:    presence,
		notifs:      notifs,
	}
}

// ---- admin accounts ----

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Admin, error) {
	if _, err := s.admins.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &domain.Admin{Email: req.Email, Password: string(hash)}
	if err := s.admins.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	a, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.GetAll(ctx)
}

func (s *Service) UpdateAdmin(ctx context.Context, id int64, req UpdateAdminRequest) (*domain.Admin, error) {
	a, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != "" && *req.Email != a.Email {
		if _, err := s.admins.GetByEmailExcept(ctx, *req.Email, id); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		a.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		a.Password = string(hash)
	}

	if err := s.admins.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, id int64) error {
	if _, err := s.GetAdmin(ctx, id); err != nil {
		return err
	}
	return s.admins.Delete(ctx, id)
}

// ---- domain moderation ----

func (s *Service) ListDomains(ctx context.Context, status *int) ([]domain.Domain, error) {
	return s.domains.GetAll(ctx, status)
}

func (s *Service) GetDomain(ctx context.Context, id int64) (*domain.Domain, error) {
	d, err := s.domains.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return d, nil
}

// UpdateDomain edits any listing, including its moderation status. Both
// feeds are told what happened; the wording reflects the status transition.
func (s *Service) UpdateDomain(ctx context.Context, id int64, in UpdateDomainInput) (*domain.Domain, error) {
	d, err := s.GetDomain(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStatus := d.Status

	if in.Name != nil && *in.Name != "" {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Status != nil {
		d.Status = *in.Status
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

	word := "Updated"
	switch {
	case prevStatus != domain.DomainStatusApproved && d.Status == domain.DomainStatusApproved:
		word = "Verified"
	case prevStatus == domain.DomainStatusApproved && d.Status != domain.DomainStatusApproved:
		word = "Blocked"
	}

	adminMsg := fmt.Sprintf("Domain %q was %s", d.Name, word)
	if err := s.notifs.Send(ctx, notifications.AudienceAdmin, notifications.EventAdminDomainUpdatedByAdmin, adminMsg, d.UserID, d); err != nil {
		return nil, err
	}
	if d.UserID != nil {
		userMsg := fmt.Sprintf("Your domain %q was %s by admin.", d.Name, word)
		if err := s.notifs.Send(ctx, notifications.AudienceUser(*d.UserID), notifications.EventUserDomainUpdatedByAdmin, userMsg, d.UserID, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DeleteDomain removes a listing and its stored media. The owner, if any,
// is told alongside the moderation feed.
func (s *Service) DeleteDomain(ctx context.Context, id int64) error {
	d, err := s.GetDomain(ctx, id)
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, append(d.Images, d.Videos...))

	if err := s.domains.Delete(ctx, d.ID); err != nil {
		return err
	}

	adminMsg := fmt.Sprintf("Domain %q was deleted", d.Name)
	if err := s.notifs.Send(ctx, notifications.AudienceAdmin, notifications.EventAdminDomainDeletedByAdmin, adminMsg, d.UserID, d); err != nil {
		return err
	}
	if d.UserID != nil {
		userMsg := fmt.Sprintf("Your domain %q was deleted by admin.", d.Name)
		return s.notifs.Send(ctx, notifications.AudienceUser(*d.UserID), notifications.EventUserDomainDeletedByAdmin, userMsg, d.UserID, d)
	}
	return nil
}

// ---- user moderation ----

// ListUsers annotates every user with their live connection state.
func (s *Service) ListUsers(ctx context.Context) (*UsersOverview, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &UsersOverview{
		Users:       make([]UserWithPresence, 0, len(users)),
		OnlineUsers: s.presence.ListOnline(),
	}
	for _, u := range users {
		out.Users = append(out.Users, UserWithPresence{
			User:   u,
			Online: s.presence.IsOnline(u.ID),
		})
	}
	return out, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != "" && *in.Email != u.Email {
		if _, err := s.users.GetByEmailExcept(ctx, *in.Email, id); err == nil {
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

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, append(u.Images, u.Videos...))
	return s.users.Delete(ctx, id)
}

// ---- token administration ----

func (s *Service) ListUserTokens(ctx context.Context) ([]domain.UserToken, error) {
	return s.userTokens.GetAll(ctx)
}

func (s *Service) ListAdminTokens(ctx context.Context) ([]domain.AdminToken, error) {
	return s.adminTokens.GetAll(ctx)
}

func (s *Service) DeleteUserToken(ctx context.Context, id int64) error {
	return s.userTokens.Delete(ctx, id)
}

func (s *Service) DeleteAdminToken(ctx context.Context, id int64) error {
	return s.adminTokens.Delete(ctx, id)
}

// ---- media helpers ----

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
