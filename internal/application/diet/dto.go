package diet

import (
	"time"

	"github.com/dailydiet/backend/internal/domain/diet"
	"github.com/google/uuid"
)

// CreateMealRequest represents a request to record a meal.
// Date accepts either a full timestamp (RFC 3339) or a plain date; in the
// latter case Hours supplies the time of day as "HH:MM".
type CreateMealRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date" binding:"required"`
	Hours       string `json:"hours" binding:"omitempty,hhmm"`
	OnDiet      *bool  `json:"onDiet" binding:"required"`
}

// UpdateMealRequest replaces every mutable field of a meal
type UpdateMealRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date" binding:"required"`
	Hours       string `json:"hours" binding:"omitempty,hhmm"`
	OnDiet      *bool  `json:"onDiet" binding:"required"`
}

// MealResponse represents a meal in API responses. Field names follow the
// persisted schema, matching what clients read back from list and detail
// endpoints.
type MealResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MealDate    time.Time `json:"meal_date"`
	OnDiet      bool      `json:"on_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToMealResponse converts a domain meal to its API representation
func ToMealResponse(meal *diet.Meal) MealResponse {
	return MealResponse{
		ID:          meal.ID,
		UserID:      meal.UserID,
		Name:        meal.Name,
		Description: meal.Description,
		MealDate:    meal.MealDate,
		OnDiet:      meal.OnDiet,
		CreatedAt:   meal.CreatedAt,
		UpdatedAt:   meal.UpdatedAt,
	}
}
