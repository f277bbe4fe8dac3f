package diet

import (
	"strings"
	"time"

	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Meal is a single recorded meal, always owned by exactly one user.
// Every read and mutation is scoped by the owning user id.
type Meal struct {
	shared.BaseEntity
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	MealDate    time.Time `gorm:"column:meal_date" json:"meal_date"`
	OnDiet      bool      `gorm:"column:on_diet;not null" json:"on_diet"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the database table name
func (Meal) TableName() string {
	return "meals"
}

// NewMeal creates a meal owned by the given user
func NewMeal(userID uuid.UUID, name, description string, mealDate time.Time, onDiet bool) (*Meal, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("meal owner is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name is required")
	}

	base := shared.NewBaseEntity()
	return &Meal{
		BaseEntity:  base,
		UserID:      userID,
		Name:        name,
		Description: description,
		MealDate:    mealDate.UTC(),
		OnDiet:      onDiet,
		UpdatedAt:   base.CreatedAt,
	}, nil
}

// Revise overwrites all mutable fields and bumps the update timestamp.
// Ownership and identity never change.
func (m *Meal) Revise(name, description string, mealDate time.Time, onDiet bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("name is required")
	}

	m.Name = name
	m.Description = description
	m.MealDate = mealDate.UTC()
	m.OnDiet = onDiet
	m.UpdatedAt = time.Now().UTC()
	return nil
}
