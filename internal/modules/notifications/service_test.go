package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"domainsmarket/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockStore) ListByNamespace(ctx context.Context, namespace string, ownerID *int64, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, namespace, ownerID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockStore) CountByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	args := m.Called(ctx, namespace, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) CountUnread(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	args := m.Called(ctx, namespace, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockStore) DeleteByNamespace(ctx context.Context, namespace string, ownerID *int64) (int64, error) {
	args := m.Called(ctx, namespace, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type emittedEvent struct {
	audience Audience
	event    Event
	payload  any
}

// routerSpy records emissions instead of pushing frames.
type routerSpy struct {
	events []emittedEvent
}

func (r *routerSpy) Emit(audience Audience, event Event, payload any) {
	r.events = append(r.events, emittedEvent{audience: audience, event: event, payload: payload})
}

func TestSendPersistsThenPushes(t *testing.T) {
	store := new(mockStore)
	router := &routerSpy{}
	svc := NewService(store, router)

	userID := int64(5)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*domain.Notification)
			n.ID = 1
			n.CreatedAt = created
		}).
		Return(nil)

	err := svc.Send(context.Background(), AudienceUser(userID), EventUserDomainRequested, "Your domain \"x.ge\" was submitted for review.", &userID, nil)
	require.NoError(t, err)

	require.Len(t, router.events, 1)
	got := router.events[0]
	assert.Equal(t, AudienceUser(5), got.audience)
	assert.Equal(t, EventUserDomainRequested, got.event)

	payload, ok := got.payload.(Payload)
	require.True(t, ok)
	assert.Equal(t, &userID, payload.UserID)
	assert.Equal(t, "Your domain \"x.ge\" was submitted for review.", payload.Message)
	assert.Equal(t, created, payload.Timestamp)

	store.AssertExpectations(t)
}

func TestSendSkipsPushWhenPersistFails(t *testing.T) {
	store := new(mockStore)
	router := &routerSpy{}
	svc := NewService(store, router)

	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.Send(context.Background(), AudienceAdmin, EventAdminDomainRequest, "msg", nil, nil)
	require.Error(t, err)
	assert.Empty(t, router.events, "no push may happen without a persisted record")
}

func TestSendGuestRecordHasNoOwner(t *testing.T) {
	store := new(mockStore)
	router := &routerSpy{}
	svc := NewService(store, router)

	var persisted *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.Notification)
		}).
		Return(nil)

	err := svc.Send(context.Background(), AudienceAdmin, EventAdminDomainRequest, "Guest requested to add domain \"x.ge\"", nil, nil)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Nil(t, persisted.UserID)
	assert.Equal(t, "admin:domain_request", persisted.Type)
	assert.False(t, persisted.Read)

	require.Len(t, router.events, 1)
	payload := router.events[0].payload.(Payload)
	assert.Nil(t, payload.UserID)
}

func TestListPaginationMath(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, &routerSpy{})

	store.On("CountByNamespace", mock.Anything, NamespaceAdmin, (*int64)(nil)).Return(int64(11), nil)
	store.On("ListByNamespace", mock.Anything, NamespaceAdmin, (*int64)(nil), 9, 0).
		Return(make([]domain.Notification, 9), nil)
	store.On("CountUnread", mock.Anything, NamespaceAdmin, (*int64)(nil)).Return(int64(4), nil)

	list, err := svc.List(context.Background(), NamespaceAdmin, nil, 1, 9)
	require.NoError(t, err)

	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 9, list.Limit)
	assert.Equal(t, int64(11), list.TotalItems)
	assert.Equal(t, 2, list.TotalPages)
	assert.Equal(t, int64(4), list.UnseenCount)
	assert.Len(t, list.Data, 9)
}

func TestListDefaultsPaging(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, &routerSpy{})

	store.On("CountByNamespace", mock.Anything, NamespaceUser, mock.Anything).Return(int64(0), nil)
	store.On("ListByNamespace", mock.Anything, NamespaceUser, mock.Anything, 10, 0).
		Return([]domain.Notification{}, nil)
	store.On("CountUnread", mock.Anything, NamespaceUser, mock.Anything).Return(int64(0), nil)

	owner := int64(3)
	list, err := svc.List(context.Background(), NamespaceUser, &owner, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 10, list.Limit)
	assert.Equal(t, 0, list.TotalPages)
}
