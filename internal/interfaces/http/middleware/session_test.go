package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailydiet/backend/internal/domain/identity"
	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *mockUserRepository) UpdateSessionID(ctx context.Context, id, sessionID uuid.UUID) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func setupSessionRouter(repo identity.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(repo), func(c *gin.Context) {
		userID, ok := GetSessionUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		token, _ := GetSessionToken(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID.String(),
			"token":   token.String(),
		})
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	t.Run("rejects request without cookie", func(t *testing.T) {
		repo := new(mockUserRepository)
		r := setupSessionRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"statusCode":401`)
		repo.AssertNotCalled(t, "FindBySessionID")
	})

	t.Run("rejects malformed session token", func(t *testing.T) {
		repo := new(mockUserRepository)
		r := setupSessionRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertNotCalled(t, "FindBySessionID")
	})

	t.Run("rejects token matching no user", func(t *testing.T) {
		repo := new(mockUserRepository)
		sessionID := uuid.New()
		repo.On("FindBySessionID", mock.Anything, sessionID).Return(nil, shared.ErrNotFound)
		r := setupSessionRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID.String()})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("reports storage failures as internal errors", func(t *testing.T) {
		repo := new(mockUserRepository)
		sessionID := uuid.New()
		repo.On("FindBySessionID", mock.Anything, sessionID).Return(nil, errors.New("db down"))
		r := setupSessionRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID.String()})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("exposes resolved user id distinct from raw token", func(t *testing.T) {
		repo := new(mockUserRepository)
		sessionID := uuid.New()
		user, err := identity.NewUser("Jane Doe", "jane@example.com", sessionID)
		require.NoError(t, err)
		repo.On("FindBySessionID", mock.Anything, sessionID).Return(user, nil)
		r := setupSessionRouter(repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID.String()})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID.String())
		assert.Contains(t, w.Body.String(), sessionID.String())
		assert.NotEqual(t, user.ID, sessionID)
		repo.AssertExpectations(t)
	})
}

func TestGetSessionUserID(t *testing.T) {
	t.Run("returns false when middleware did not run", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := GetSessionUserID(c)
		assert.False(t, ok)
	})
}
