package diet

import (
	"context"

	"github.com/google/uuid"
)

// MealRepository defines the interface for meal persistence.
// Every query is qualified by the owning user id so that one user's meals are
// never reachable through another user's session.
type MealRepository interface {
	// Create inserts a new meal
	Create(ctx context.Context, meal *Meal) error

	// FindByIDForUser finds a meal by id within the given user's meals
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Meal, error)

	// FindAllForUser returns the user's meals ordered by meal_date descending,
	// ties broken by created_at descending. The summary computation depends on
	// this exact order.
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Meal, error)

	// Update overwrites an existing meal
	Update(ctx context.Context, meal *Meal) error

	// DeleteForUser removes a meal within the given user's meals
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
