package analytics

import (
	"iter"
	"time"

	"github.com/fitdash/fitdash/internal/dashboard"
)

// The chart shapers reshape raw records into the exact tabular forms the
// dashboard visualizations bind to. Each shaper is a pure function returning
// a lazy, finite, restartable sequence and tolerates empty inputs.

type FrequencyPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type CaloriePoint struct {
	Date     string `json:"date"`
	Consumed int    `json:"consumed"`
	Burned   int    `json:"burned"`
}

type MacroPoint struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
	GoalKg   float64 `json:"goalKg"`
}

// WorkoutFrequency groups workouts by short weekday label, one point per
// distinct weekday present, counted. Points come in insertion order of first
// occurrence, NOT calendar order: downstream category charts render the
// categories in the order given.
func WorkoutFrequency(workouts []dashboard.WorkoutRecord) iter.Seq[FrequencyPoint] {
	return func(yield func(FrequencyPoint) bool) {
		counts := make(map[string]int, 7)
		var order []string
		for _, w := range workouts {
			day := w.Date.Format("Mon")
			if _, seen := counts[day]; !seen {
				order = append(order, day)
			}
			counts[day]++
		}
		for _, day := range order {
			if !yield(FrequencyPoint{Day: day, Count: counts[day]}) {
				return
			}
		}
	}
}

// CalorieSeries emits one point per nutrition record, in original order,
// joined by exact date equality to the FIRST workout of that day. Additional
// same-day workouts are intentionally not aggregated into the point.
func CalorieSeries(
	nutrition []dashboard.NutritionRecord,
	workouts []dashboard.WorkoutRecord,
) iter.Seq[CaloriePoint] {
	return func(yield func(CaloriePoint) bool) {
		for _, n := range nutrition {
			burned := 0
			for _, w := range workouts {
				if sameDate(w.Date, n.Date) {
					burned = w.CaloriesBurned
					break
				}
			}
			point := CaloriePoint{
				Date:     n.Date.Format("Jan 2"),
				Consumed: n.TotalCalories,
				Burned:   burned,
			}
			if !yield(point) {
				return
			}
		}
	}
}

// MacroBreakdown emits exactly three points (protein, carbs, fats) taken from
// the most recently added nutrition record, or nothing when no records exist.
// No macro history, only the latest entry.
func MacroBreakdown(nutrition []dashboard.NutritionRecord) iter.Seq[MacroPoint] {
	return func(yield func(MacroPoint) bool) {
		if len(nutrition) == 0 {
			return
		}
		latest := nutrition[len(nutrition)-1]
		points := []MacroPoint{
			{Name: "Protein", Grams: latest.ProteinGrams},
			{Name: "Carbs", Grams: latest.CarbGrams},
			{Name: "Fats", Grams: latest.FatGrams},
		}
		for _, point := range points {
			if !yield(point) {
				return
			}
		}
	}
}

// WeightTrend maps every trend point to a chart point carrying the current
// goal weight as a constant (not historical) reference line.
func WeightTrend(points []dashboard.TrendPoint, goalWeightKg float64) iter.Seq[WeightPoint] {
	return func(yield func(WeightPoint) bool) {
		for _, p := range points {
			point := WeightPoint{
				Date:     p.Date.Format("Jan 2"),
				WeightKg: p.WeightKg,
				GoalKg:   goalWeightKg,
			}
			if !yield(point) {
				return
			}
		}
	}
}

func sameDate(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
