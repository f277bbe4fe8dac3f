package handler

import (
	"net/http"

	appdiet "github.com/dailydiet/backend/internal/application/diet"
	"github.com/dailydiet/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MealHandler handles meal tracking endpoints. Every route here runs behind
// the session middleware, so the resolved user id is always available.
type MealHandler struct {
	BaseHandler
	service *appdiet.MealService
}

// NewMealHandler creates a new MealHandler
func NewMealHandler(service *appdiet.MealService) *MealHandler {
	return &MealHandler{
		service: service,
	}
}

// Create records a new meal for the session user
func (h *MealHandler) Create(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	var req appdiet.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, "invalid request body", bindingFieldErrors(err))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), userID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c)
}

// List returns all of the session user's meals
func (h *MealHandler) List(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	meals, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MealListResponse{Meals: meals})
}

// GetByID returns a single meal owned by the session user
func (h *MealHandler) GetByID(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "meal id must be a valid UUID")
		return
	}

	meal, err := h.service.GetByID(c.Request.Context(), userID, mealID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// Update replaces every mutable field of a meal owned by the session user
func (h *MealHandler) Update(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "meal id must be a valid UUID")
		return
	}

	var req appdiet.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, "invalid request body", bindingFieldErrors(err))
		return
	}

	if _, err := h.service.Update(c.Request.Context(), userID, mealID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete removes a meal owned by the session user
func (h *MealHandler) Delete(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "meal id must be a valid UUID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, mealID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Summary returns the session user's aggregate diet metrics
func (h *MealHandler) Summary(c *gin.Context) {
	userID, err := sessionUserID(c)
	if err != nil {
		h.Unauthorized(c)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
