package handler

import (
	"errors"
	"net/http"

	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/dailydiet/backend/internal/interfaces/http/dto"
	"github.com/dailydiet/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// sessionUserID extracts the user id resolved by the session middleware
func sessionUserID(c *gin.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetSessionUserID(c)
	if !ok {
		return uuid.Nil, errors.New("session user id not found in context")
	}
	return userID, nil
}

// Created sends a 201 response with no body
func (h *BaseHandler) Created(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message))
}

// ValidationError sends a 400 response with field-level detail
func (h *BaseHandler) ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(message, fields))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "unauthorized"))
}

// InternalError sends a 500 response
func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		http.StatusInternalServerError,
		"internal server error",
	))
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponse(statusCode, domainErr.Message))
		return
	}
	h.InternalError(c)
}
