package middleware

import (
	"net/http"

	"github.com/dailydiet/backend/internal/domain/identity"
	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/dailydiet/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "sessionId"

// Context keys for session state. The raw cookie token and the resolved
// user id are distinct values and must never be aliased.
const (
	sessionTokenKey = "session_token"
	sessionUserKey  = "session_user_id"
)

// SessionAuth resolves the session cookie to a user identity and aborts
// with 401 when the cookie is absent, malformed, or matches no user.
// Downstream handlers read the resolved user id via GetSessionUserID.
func SessionAuth(users identity.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		sessionID, err := uuid.Parse(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := users.FindBySessionID(c.Request.Context(), sessionID)
		if err != nil {
			if err == shared.ErrNotFound {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"internal server error",
			))
			return
		}

		c.Set(sessionTokenKey, sessionID)
		c.Set(sessionUserKey, user.ID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		http.StatusUnauthorized,
		"unauthorized",
	))
}

// GetSessionUserID returns the user id resolved by SessionAuth
func GetSessionUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionUserKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetSessionToken returns the raw session token from the cookie, as parsed
// by SessionAuth. This is the cookie value, not the user identity.
func GetSessionToken(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionTokenKey)
	if !exists {
		return uuid.Nil, false
	}
	token, ok := v.(uuid.UUID)
	return token, ok
}
