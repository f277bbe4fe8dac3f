package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/dailydiet/backend/internal/domain/identity"
	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateSessionID(ctx context.Context, id, sessionID uuid.UUID) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func TestUserService_Create(t *testing.T) {
	t.Run("creates user bound to session token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)
		sessionID := uuid.New()

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		}, sessionID)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "Jane Doe", resp.Name)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.NotNil(t, resp.SessionID)
		assert.Equal(t, sessionID, *resp.SessionID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects blank name without touching the repository", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Name:  "   ",
			Email: "jane@example.com",
		}, uuid.New())

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		}, uuid.New())

		assert.Nil(t, resp)
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_List(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		first, err := identity.NewUser("First", "first@example.com", uuid.New())
		assert.NoError(t, err)
		second, err := identity.NewUser("Second", "second@example.com", uuid.New())
		assert.NoError(t, err)

		mockRepo.On("FindAll", mock.Anything).Return([]identity.User{*first, *second}, nil)

		users, err := service.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "First", users[0].Name)
		assert.Equal(t, "Second", users[1].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("returns empty slice when no users exist", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("FindAll", mock.Anything).Return([]identity.User{}, nil)

		users, err := service.List(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, users)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ResolveSession(t *testing.T) {
	t.Run("resolves session token to user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		sessionID := uuid.New()
		user, err := identity.NewUser("Jane Doe", "jane@example.com", sessionID)
		assert.NoError(t, err)

		mockRepo.On("FindBySessionID", mock.Anything, sessionID).Return(user, nil)

		resp, err := service.ResolveSession(context.Background(), sessionID)

		assert.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown session", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		sessionID := uuid.New()
		mockRepo.On("FindBySessionID", mock.Anything, sessionID).Return(nil, shared.ErrNotFound)

		resp, err := service.ResolveSession(context.Background(), sessionID)

		assert.Nil(t, resp)
		assert.Equal(t, shared.ErrNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}
