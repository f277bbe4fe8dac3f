package handler

import (
	"net/http"

	appidentity "github.com/dailydiet/backend/internal/application/identity"
	"github.com/dailydiet/backend/internal/infrastructure/config"
	"github.com/dailydiet/backend/internal/interfaces/http/dto"
	"github.com/dailydiet/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles user registration and listing
type UserHandler struct {
	BaseHandler
	service    *appidentity.UserService
	sessionCfg config.SessionConfig
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *appidentity.UserService, sessionCfg config.SessionConfig) *UserHandler {
	return &UserHandler{
		service:    service,
		sessionCfg: sessionCfg,
	}
}

// Create registers a new user. When the request carries no usable session
// cookie a fresh token is minted and set on the response; an existing valid
// cookie is reused so repeat signups share one session.
func (h *UserHandler) Create(c *gin.Context) {
	var req appidentity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, "invalid request body", bindingFieldErrors(err))
		return
	}

	sessionID := h.resolveOrIssueSession(c)

	if _, err := h.service.Create(c.Request.Context(), req, sessionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c)
}

// List returns every registered user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		StatusCode: http.StatusOK,
		Users:      users,
	})
}

// resolveOrIssueSession returns the session token from the request cookie,
// minting and setting a fresh one when the cookie is absent or malformed
func (h *UserHandler) resolveOrIssueSession(c *gin.Context) uuid.UUID {
	if raw, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if sessionID, err := uuid.Parse(raw); err == nil {
			return sessionID
		}
	}

	sessionID := uuid.New()
	c.SetCookie(
		middleware.SessionCookieName,
		sessionID.String(),
		int(h.sessionCfg.MaxAge.Seconds()),
		h.sessionCfg.Path,
		"",
		h.sessionCfg.Secure,
		true,
	)
	return sessionID
}
