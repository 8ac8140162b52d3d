package admin

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetAll(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) Update(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmailExcept(ctx context.Context, email string, id int64) (*domain.User, error) {
	args := m.Called(ctx, email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDomainRepo struct {
	mock.Mock
}

func (m *mockDomainRepo) GetByID(ctx context.Context, id int64) (*domain.Domain, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Domain), args.Error(1)
}

func (m *mockDomainRepo) GetAll(ctx context.Context, status *int) ([]domain.Domain, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Domain), args.Error(1)
}

func (m *mockDomainRepo) Update(ctx context.Context, d *domain.Domain) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDomainRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserTokenRepo struct {
	mock.Mock
}

func (m *mockUserTokenRepo) GetAll(ctx context.Context) ([]domain.UserToken, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserToken), args.Error(1)
}

func (m *mockUserTokenRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAdminTokenRepo struct {
	mock.Mock
}

func (m *mockAdminTokenRepo) GetAll(ctx context.Context) ([]domain.AdminToken, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdminToken), args.Error(1)
}

func (m *mockAdminTokenRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMediaStore struct {
	mock.Mock
}

func (m *mockMediaStore) Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (string, string, error) {
	args := m.Called(ctx, folder, filename, r, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockMediaStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type fakePresence struct {
	online []int64
}

func (f *fakePresence) ListOnline() []int64 { return f.online }

func (f *fakePresence) IsOnline(userID int64) bool {
	for _, id := range f.online {
		if id == userID {
			return true
		}
	}
	return false
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, audience notifications.Audience, event notifications.Event, message string, ownerUserID *int64, data any) error {
	args := m.Called(ctx, audience, event, message, ownerUserID, data)
	return args.Error(0)
}

type testDeps struct {
	admins      *mockAdminRepo
	users       *mockUserRepo
	domains     *mockDomainRepo
	userTokens  *mockUserTokenRepo
	adminTokens *mockAdminTokenRepo
	media       *mockMediaStore
	presence    *fakePresence
	notifs      *mockNotifier
}

func newTestService(presence *fakePresence) (*Service, *testDeps) {
	if presence == nil {
		presence = &fakePresence{}
	}
	deps := &testDeps{
		admins:      new(mockAdminRepo),
		users:       new(mockUserRepo),
		domains:     new(mockDomainRepo),
		userTokens:  new(mockUserTokenRepo),
		adminTokens: new(mockAdminTokenRepo),
		media:       new(mockMediaStore),
		presence:    presence,
		notifs:      new(mockNotifier),
	}
	svc := NewService(deps.admins, deps.users, deps.domains, deps.userTokens, deps.adminTokens,
		deps.media, deps.presence, deps.notifs)
	return svc, deps
}

func TestUpdateDomainVerifiedWording(t *testing.T) {
	svc, deps := newTestService(nil)

	ownerID := int64(4)
	pending := &domain.Domain{ID: 2, Name: "shop.ge", Status: domain.DomainStatusPending, UserID: &ownerID}
	deps.domains.On("GetByID", mock.Anything, int64(2)).Return(pending, nil)
	deps.domains.On("Update", mock.Anything, pending).Return(nil)

	deps.notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainUpdatedByAdmin,
		`Domain "shop.ge" was Verified`, &ownerID, mock.Anything).Return(nil)
	deps.notifs.On("Send", mock.Anything, notifications.AudienceUser(4), notifications.EventUserDomainUpdatedByAdmin,
		`Your domain "shop.ge" was Verified by admin.`, &ownerID, mock.Anything).Return(nil)

	approved := domain.DomainStatusApproved
	d, err := svc.UpdateDomain(context.Background(), 2, UpdateDomainInput{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, domain.DomainStatusApproved, d.Status)

	deps.notifs.AssertExpectations(t)
}

func TestUpdateDomainBlockedWording(t *testing.T) {
	svc, deps := newTestService(nil)

	ownerID := int64(4)
	live := &domain.Domain{ID: 2, Name: "shop.ge", Status: domain.DomainStatusApproved, UserID: &ownerID}
	deps.domains.On("GetByID", mock.Anything, int64(2)).Return(live, nil)
	deps.domains.On("Update", mock.Anything, live).Return(nil)

	deps.notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainUpdatedByAdmin,
		`Domain "shop.ge" was Blocked`, &ownerID, mock.Anything).Return(nil)
	deps.notifs.On("Send", mock.Anything, notifications.AudienceUser(4), notifications.EventUserDomainUpdatedByAdmin,
		`Your domain "shop.ge" was Blocked by admin.`, &ownerID, mock.Anything).Return(nil)

	blocked := domain.DomainStatusPending
	_, err := svc.UpdateDomain(context.Background(), 2, UpdateDomainInput{Status: &blocked})
	require.NoError(t, err)
	deps.notifs.AssertExpectations(t)
}

func TestUpdateDomainPlainEditWording(t *testing.T) {
	svc, deps := newTestService(nil)

	live := &domain.Domain{ID: 2, Name: "shop.ge", Status: domain.DomainStatusApproved}
	deps.domains.On("GetByID", mock.Anything, int64(2)).Return(live, nil)
	deps.domains.On("Update", mock.Anything, live).Return(nil)

	// No owner: only the moderation feed hears about it.
	deps.notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainUpdatedByAdmin,
		`Domain "shop.ge" was Updated`, (*int64)(nil), mock.Anything).Return(nil)

	desc := "fresh description"
	_, err := svc.UpdateDomain(context.Background(), 2, UpdateDomainInput{Description: &desc})
	require.NoError(t, err)

	deps.notifs.AssertExpectations(t)
	deps.notifs.AssertNumberOfCalls(t, "Send", 1)
}

func TestDeleteDomainNotifiesOwner(t *testing.T) {
	svc, deps := newTestService(nil)

	ownerID := int64(4)
	live := &domain.Domain{
		ID:     2,
		Name:   "shop.ge",
		UserID: &ownerID,
		Images: domain.MediaList{{Key: "img1"}},
	}
	deps.domains.On("GetByID", mock.Anything, int64(2)).Return(live, nil)
	deps.domains.On("Delete", mock.Anything, int64(2)).Return(nil)
	deps.media.On("Delete", mock.Anything, "img1").Return(nil)

	deps.notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainDeletedByAdmin,
		`Domain "shop.ge" was deleted`, &ownerID, mock.Anything).Return(nil)
	deps.notifs.On("Send", mock.Anything, notifications.AudienceUser(4), notifications.EventUserDomainDeletedByAdmin,
		`Your domain "shop.ge" was deleted by admin.`, &ownerID, mock.Anything).Return(nil)

	require.NoError(t, svc.DeleteDomain(context.Background(), 2))
	deps.media.AssertExpectations(t)
	deps.notifs.AssertExpectations(t)
}

func TestListUsersAnnotatesPresence(t *testing.T) {
	svc, deps := newTestService(&fakePresence{online: []int64{2}})

	deps.users.On("GetAll", mock.Anything).Return([]domain.User{
		{ID: 1, Email: "offline@example.com"},
		{ID: 2, Email: "online@example.com"},
	}, nil)

	overview, err := svc.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Users, 2)
	assert.False(t, overview.Users[0].Online)
	assert.True(t, overview.Users[1].Online)
	assert.Equal(t, []int64{2}, overview.OnlineUsers)
}

func TestRegisterAdminConflict(t *testing.T) {
	svc, deps := newTestService(nil)

	deps.admins.On("GetByEmail", mock.Anything, "boss@example.com").
		Return(&domain.Admin{ID: 1}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "boss@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetDomainNotFound(t *testing.T) {
	svc, deps := newTestService(nil)

	deps.domains.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDomain(context.Background(), 77)
	assert.ErrorIs(t, err, ErrDomainNotFound)
}
