package analytics

import "github.com/fitdash/fitdash/internal/dashboard"

// Summary holds the aggregate workout / nutrition statistics
type Summary struct {
	TotalCaloriesBurned int     `json:"totalCaloriesBurned"`
	AvgCaloriesBurned   float64 `json:"avgCaloriesBurned"`
	AvgDailyCalories    float64 `json:"avgDailyCalories"`
}

// Summarize computes the summary statistics over the full record lists.
// Pure function, all averages defined as 0 for empty inputs.
func Summarize(workouts []dashboard.WorkoutRecord, nutrition []dashboard.NutritionRecord) Summary {
	var summary Summary

	for _, w := range workouts {
		summary.TotalCaloriesBurned += w.CaloriesBurned
	}
	if len(workouts) > 0 {
		summary.AvgCaloriesBurned = float64(summary.TotalCaloriesBurned) / float64(len(workouts))
	}

	totalConsumed := 0
	for _, n := range nutrition {
		totalConsumed += n.TotalCalories
	}
	if len(nutrition) > 0 {
		summary.AvgDailyCalories = float64(totalConsumed) / float64(len(nutrition))
	}

	return summary
}
