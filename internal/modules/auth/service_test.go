package auth

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domainsmarket/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type mockUserTokenRepo struct {
	mock.Mock
}

func (m *mockUserTokenRepo) Upsert(ctx context.Context, userID int64, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *mockUserTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockAdminTokenRepo struct {
	mock.Mock
}

func (m *mockAdminTokenRepo) Upsert(ctx context.Context, adminID int64, token string) error {
	args := m.Called(ctx, adminID, token)
	return args.Error(0)
}

func (m *mockAdminTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockResetCodeRepo struct {
	mock.Mock
}

func (m *mockResetCodeRepo) Create(ctx context.Context, c *domain.PasswordResetCode) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockResetCodeRepo) LatestValid(ctx context.Context, userID int64) (*domain.PasswordResetCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetCode), args.Error(1)
}

func (m *mockResetCodeRepo) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockResetCodeRepo) DeleteForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type stubIssuer struct {
	token string
}

func (s *stubIssuer) GenerateToken(id int64, role string) (string, error) {
	return s.token, nil
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendPasswordReset(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

type authDeps struct {
	users       *mockUserRepo
	admins      *mockAdminRepo
	userTokens  *mockUserTokenRepo
	adminTokens *mockAdminTokenRepo
	resetCodes  *mockResetCodeRepo
	mail        *mockMailer
}

func newTestService() (*Service, *authDeps) {
	deps := &authDeps{
		users:       new(mockUserRepo),
		admins:      new(mockAdminRepo),
		userTokens:  new(mockUserTokenRepo),
		adminTokens: new(mockAdminTokenRepo),
		resetCodes:  new(mockResetCodeRepo),
		mail:        new(mockMailer),
	}
	svc := NewService(deps.users, deps.admins, deps.userTokens, deps.adminTokens,
		deps.resetCodes, &stubIssuer{token: "jwt-token"}, deps.mail)
	return svc, deps
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUserIssuesAndStoresToken(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Email: "u@example.com", Password: hashOf(t, "secret1")}
	deps.users.On("GetByEmail", mock.Anything, "u@example.com").Return(u, nil)
	deps.userTokens.On("Upsert", mock.Anything, int64(5), "jwt-token").Return(nil)
	deps.users.On("Update", mock.Anything, u).Return(nil)

	token, got, err := svc.LoginUser(context.Background(), LoginRequest{Email: "u@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, int64(5), got.ID)
	assert.NotNil(t, got.LastSeen)

	deps.userTokens.AssertExpectations(t)
}

func TestLoginUserWrongPassword(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Password: hashOf(t, "secret1")}
	deps.users.On("GetByEmail", mock.Anything, mock.Anything).Return(u, nil)

	_, _, err := svc.LoginUser(context.Background(), LoginRequest{Email: "u@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	deps.userTokens.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	svc, deps := newTestService()

	deps.users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdminStoresAdminToken(t *testing.T) {
	svc, deps := newTestService()

	a := &domain.Admin{ID: 2, Email: "a@example.com", Password: hashOf(t, "secret1")}
	deps.admins.On("GetByEmail", mock.Anything, "a@example.com").Return(a, nil)
	deps.adminTokens.On("Upsert", mock.Anything, int64(2), "jwt-token").Return(nil)

	token, _, err := svc.LoginAdmin(context.Background(), LoginRequest{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	deps.adminTokens.AssertExpectations(t)
}

func TestLogoutDeletesByTokenValue(t *testing.T) {
	svc, deps := newTestService()

	deps.userTokens.On("DeleteByToken", mock.Anything, "jwt-token").Return(nil)
	require.NoError(t, svc.LogoutUser(context.Background(), "jwt-token"))
	deps.userTokens.AssertExpectations(t)
}

func TestForgotPasswordCreatesCodeAndMails(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Email: "u@example.com"}
	deps.resetCodes.On("DeleteExpired", mock.Anything).Return(nil)
	deps.users.On("GetByEmail", mock.Anything, "u@example.com").Return(u, nil)

	var created *domain.PasswordResetCode
	deps.resetCodes.On("Create", mock.Anything, mock.AnythingOfType("*domain.PasswordResetCode")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.PasswordResetCode)
		}).
		Return(nil)
	deps.mail.On("SendPasswordReset", "u@example.com", mock.AnythingOfType("string")).Return(nil)

	require.NoError(t, svc.ForgotPassword(context.Background(), "u@example.com"))

	require.NotNil(t, created)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), created.Code)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), created.ExpiresAt, time.Minute)
	deps.mail.AssertCalled(t, "SendPasswordReset", "u@example.com", created.Code)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, deps := newTestService()

	deps.resetCodes.On("DeleteExpired", mock.Anything).Return(nil)
	deps.users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	err := svc.ForgotPassword(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPasswordWrongCode(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Email: "u@example.com"}
	deps.users.On("GetByEmail", mock.Anything, "u@example.com").Return(u, nil)
	deps.resetCodes.On("LatestValid", mock.Anything, int64(5)).
		Return(&domain.PasswordResetCode{UserID: 5, Code: "123456"}, nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "u@example.com", Code: "654321", Password: "newpass1",
	})
	assert.ErrorIs(t, err, ErrInvalidCode)
	deps.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResetPasswordExpiredCode(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Email: "u@example.com"}
	deps.users.On("GetByEmail", mock.Anything, "u@example.com").Return(u, nil)
	deps.resetCodes.On("LatestValid", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "u@example.com", Code: "123456", Password: "newpass1",
	})
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestResetPasswordRehashesAndCleansUp(t *testing.T) {
	svc, deps := newTestService()

	u := &domain.User{ID: 5, Email: "u@example.com", Password: hashOf(t, "old")}
	deps.users.On("GetByEmail", mock.Anything, "u@example.com").Return(u, nil)
	deps.resetCodes.On("LatestValid", mock.Anything, int64(5)).
		Return(&domain.PasswordResetCode{UserID: 5, Code: "123456"}, nil)
	deps.users.On("Update", mock.Anything, u).Return(nil)
	deps.resetCodes.On("DeleteForUser", mock.Anything, int64(5)).Return(nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email: "u@example.com", Code: "123456", Password: "newpass1",
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass1")))
	deps.resetCodes.AssertExpectations(t)
}
