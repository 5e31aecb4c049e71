package insights

import (
	"fmt"
	"strings"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/dashboard/analytics"
)

// BuildPrompt renders the text-generation prompt from the user state.
// Pure, so prompt content is testable without hitting the model.
func BuildPrompt(state *dashboard.UserState, summary analytics.Summary, streak int) string {
	var sb strings.Builder

	displayName := state.Profile.DisplayName
	if displayName == "" {
		displayName = "the user"
	}

	sb.WriteString(fmt.Sprintf(
		"You are a fitness coach. Write short, actionable insights for %s.\n",
		displayName,
	))
	sb.WriteString(fmt.Sprintf("Goal: %s.\n", state.Goals.GoalType))

	if len(state.TrendPoints) > 0 {
		lastTrend := state.TrendPoints[len(state.TrendPoints)-1]
		sb.WriteString(fmt.Sprintf(
			"Current weight: %.1f kg, target weight: %.1f kg.\n",
			lastTrend.WeightKg, state.Goals.TargetWeightKg,
		))
	}

	sb.WriteString(fmt.Sprintf("Workout streak: %d days.\n", streak))
	sb.WriteString(fmt.Sprintf(
		"Average daily intake: %.0f kcal, average burn per workout: %.0f kcal.\n",
		summary.AvgDailyCalories, summary.AvgCaloriesBurned,
	))

	if lastNames := lastWorkoutNames(state.Workouts, 3); len(lastNames) > 0 {
		sb.WriteString(fmt.Sprintf("Recent workouts: %s.\n", strings.Join(lastNames, ", ")))
	}

	sb.WriteString("Respond with one insight per line, no numbering, no empty lines.")

	return sb.String()
}

func lastWorkoutNames(workouts []dashboard.WorkoutRecord, n int) []string {
	if len(workouts) == 0 {
		return nil
	}
	start := len(workouts) - n
	if start < 0 {
		start = 0
	}
	names := make([]string, 0, n)
	for _, w := range workouts[start:] {
		names = append(names, w.ExerciseName)
	}
	return names
}
