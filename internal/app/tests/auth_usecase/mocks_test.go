package authusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gopostboard/internal/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entities.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*entities.User, error) {
	args := m.Called(ctx, id, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockResetTokenRepository struct {
	mock.Mock
}

func (m *mockResetTokenRepository) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockResetTokenRepository) Resolve(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResetTokenRepository) Consume(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockSessionManager struct {
	mock.Mock
}

func (m *mockSessionManager) Load(ctx context.Context, sessionID string) (*entities.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *mockSessionManager) Bind(ctx context.Context, session *entities.Session, userID int64) error {
	err := m.Called(ctx, session, userID).Error(0)
	if err == nil {
		session.UserID = userID
		session.Destroyed = false
	}
	return err
}

func (m *mockSessionManager) Destroy(ctx context.Context, session *entities.Session) error {
	err := m.Called(ctx, session).Error(0)
	if err == nil {
		session.UserID = 0
		session.Destroyed = true
	}
	return err
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) bool {
	return m.Called(ctx, password, hash).Bool(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

func newAuthUseCaseMocks() (*mockUserRepository, *mockResetTokenRepository, *mockSessionManager, *mockPasswordService, *mockEmailService) {
	return new(mockUserRepository),
		new(mockResetTokenRepository),
		new(mockSessionManager),
		new(mockPasswordService),
		new(mockEmailService)
}
