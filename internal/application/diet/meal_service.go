package diet

import (
	"context"
	"time"

	"github.com/dailydiet/backend/internal/domain/diet"
	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MealService handles meal tracking operations for a single user at a time.
// The user id always comes from the resolved session, never from the request.
type MealService struct {
	mealRepo diet.MealRepository
}

// NewMealService creates a new MealService
func NewMealService(mealRepo diet.MealRepository) *MealService {
	return &MealService{
		mealRepo: mealRepo,
	}
}

// Create records a new meal for the user
func (s *MealService) Create(ctx context.Context, userID uuid.UUID, req CreateMealRequest) (*MealResponse, error) {
	mealDate, err := resolveMealDate(req.Date, req.Hours)
	if err != nil {
		return nil, err
	}

	meal, err := diet.NewMeal(userID, req.Name, req.Description, mealDate, *req.OnDiet)
	if err != nil {
		return nil, err
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}

	response := ToMealResponse(meal)
	return &response, nil
}

// List returns all of the user's meals, most recent first
func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]MealResponse, error) {
	meals, err := s.mealRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]MealResponse, len(meals))
	for i := range meals {
		responses[i] = ToMealResponse(&meals[i])
	}
	return responses, nil
}

// GetByID retrieves one of the user's meals
func (s *MealService) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*MealResponse, error) {
	meal, err := s.mealRepo.FindByIDForUser(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	response := ToMealResponse(meal)
	return &response, nil
}

// Update replaces every mutable field of one of the user's meals
func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, req UpdateMealRequest) (*MealResponse, error) {
	mealDate, err := resolveMealDate(req.Date, req.Hours)
	if err != nil {
		return nil, err
	}

	meal, err := s.mealRepo.FindByIDForUser(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	if err := meal.Revise(req.Name, req.Description, mealDate, *req.OnDiet); err != nil {
		return nil, err
	}

	if err := s.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}

	response := ToMealResponse(meal)
	return &response, nil
}

// Delete removes one of the user's meals
func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	return s.mealRepo.DeleteForUser(ctx, userID, mealID)
}

// Summary computes the user's diet metrics across all recorded meals
func (s *MealService) Summary(ctx context.Context, userID uuid.UUID) (*diet.Summary, error) {
	meals, err := s.mealRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := diet.Summarize(meals)
	return &summary, nil
}

// resolveMealDate interprets the date and hours fields of a meal request.
// A full timestamp stands alone; a plain date requires the time of day in
// the hours field. All results are normalized to UTC.
func resolveMealDate(date, hours string) (time.Time, error) {
	if hours != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, shared.NewValidationError("date must be formatted as YYYY-MM-DD when hours is given")
		}
		clock, err := time.Parse("15:04", hours)
		if err != nil {
			return time.Time{}, shared.NewValidationError("hours must be formatted as HH:MM")
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
	}

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", date); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, shared.NewValidationError("date must be an RFC 3339 timestamp or YYYY-MM-DD")
}
