package persistence

import (
	"context"
	"errors"

	"github.com/dailydiet/backend/internal/domain/diet"
	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMealRepository implements diet.MealRepository using GORM
type GormMealRepository struct {
	db *gorm.DB
}

// NewGormMealRepository creates a new GormMealRepository
func NewGormMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

// Create persists a new meal
func (r *GormMealRepository) Create(ctx context.Context, meal *diet.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// FindByIDForUser finds a meal by ID scoped to its owner.
// A meal belonging to another user is reported as not found.
func (r *GormMealRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*diet.Meal, error) {
	var meal diet.Meal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// FindAllForUser returns all meals owned by the user, most recent first
func (r *GormMealRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]diet.Meal, error) {
	var meals []diet.Meal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("meal_date DESC, created_at DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// Update persists changes to an existing meal
func (r *GormMealRepository) Update(ctx context.Context, meal *diet.Meal) error {
	result := r.db.WithContext(ctx).
		Model(&diet.Meal{}).
		Where("user_id = ? AND id = ?", meal.UserID, meal.ID).
		Updates(map[string]interface{}{
			"name":        meal.Name,
			"description": meal.Description,
			"meal_date":   meal.MealDate,
			"on_diet":     meal.OnDiet,
			"updated_at":  meal.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForUser removes a meal scoped to its owner
func (r *GormMealRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&diet.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
