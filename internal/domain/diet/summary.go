package diet

// Summary aggregates a user's meal history. Field names follow the public
// wire contract of the summary endpoint.
type Summary struct {
	TotalMeals    int `json:"total_meals"`
	OnDietMeals   int `json:"total_meals_on_diet"`
	OffDietMeals  int `json:"total_meals_outside_the_diet"`
	BestOnDietRun int `json:"best_on_diet_sequency"`
}

// Summarize computes the aggregate statistics for a meal history in a single
// pass. The best on-diet run is defined over consecutive elements of the input
// slice, so callers must pass meals ordered by meal_date descending, the order
// FindAllForUser returns them in. An empty history yields all zeros.
func Summarize(meals []Meal) Summary {
	var s Summary
	run := 0

	for _, meal := range meals {
		s.TotalMeals++
		if meal.OnDiet {
			s.OnDietMeals++
			run++
		} else {
			s.OffDietMeals++
			run = 0
		}
		if run > s.BestOnDietRun {
			s.BestOnDietRun = run
		}
	}

	return s
}
