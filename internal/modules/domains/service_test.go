package domains

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"domainsmarket/internal/domain"
	"domainsmarket/internal/modules/notifications"
)

type mockDomainRepo struct {
	mock.Mock
}

func (m *mockDomainRepo) Create(ctx context.Context, d *domain.Domain) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDomainRepo) GetApprovedByID(ctx context.Context, id int64) (*domain.Domain, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Domain), args.Error(1)
}

func (m *mockDomainRepo) GetApproved(ctx context.Context, limit, offset int) ([]domain.Domain, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Domain), args.Get(1).(int64), args.Error(2)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, audience notifications.Audience, event notifications.Event, message string, ownerUserID *int64, data any) error {
	args := m.Called(ctx, audience, event, message, ownerUserID, data)
	return args.Error(0)
}

func TestCreateNotifiesAdminsAndOwner(t *testing.T) {
	repo := new(mockDomainRepo)
	notifs := new(mockNotifier)
	svc := NewService(repo, notifs)

	userID := int64(7)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Domain")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Domain).ID = 3
		}).
		Return(nil)

	notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainRequest,
		`User 7 requested to add domain "cool.ge"`, &userID, mock.Anything).Return(nil)
	notifs.On("Send", mock.Anything, notifications.AudienceUser(7), notifications.EventUserDomainRequested,
		`Your domain "cool.ge" was submitted for review.`, &userID, mock.Anything).Return(nil)

	d, err := svc.Create(context.Background(), CreateDomainRequest{Name: "cool.ge"}, &userID)
	require.NoError(t, err)
	assert.Equal(t, domain.DomainStatusPending, d.Status)
	assert.Equal(t, &userID, d.UserID)

	notifs.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateGuestNotifiesAdminsOnly(t *testing.T) {
	repo := new(mockDomainRepo)
	notifs := new(mockNotifier)
	svc := NewService(repo, notifs)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("Send", mock.Anything, notifications.AudienceAdmin, notifications.EventAdminDomainRequest,
		`Guest requested to add domain "cool.ge"`, (*int64)(nil), mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), CreateDomainRequest{Name: "cool.ge"}, nil)
	require.NoError(t, err)

	notifs.AssertExpectations(t)
	notifs.AssertNumberOfCalls(t, "Send", 1)
}

func TestCreatePersistFailureSkipsNotifications(t *testing.T) {
	repo := new(mockDomainRepo)
	notifs := new(mockNotifier)
	svc := NewService(repo, notifs)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := svc.Create(context.Background(), CreateDomainRequest{Name: "cool.ge"}, nil)
	require.Error(t, err)
	notifs.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListBuildsPagination(t *testing.T) {
	repo := new(mockDomainRepo)
	svc := NewService(repo, new(mockNotifier))

	repo.On("GetApproved", mock.Anything, 10, 10).
		Return(make([]domain.Domain, 10), int64(25), nil)

	list, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, list.CurrentPage)
	assert.Equal(t, 10, list.Limit)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, int64(25), list.TotalItems)
	assert.Len(t, list.Data, 10)
}

func TestGetMapsNotFound(t *testing.T) {
	repo := new(mockDomainRepo)
	svc := NewService(repo, new(mockNotifier))

	repo.On("GetApprovedByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
