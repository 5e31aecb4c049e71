package dashboard

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrStateNotFound  = errors.New("user state not found")
	ErrRecordNotFound = errors.New("record not found")
)

type GoalType string

const (
	GoalFatLoss     GoalType = "Fat Loss"
	GoalMuscleGain  GoalType = "Muscle Gain"
	GoalEndurance   GoalType = "Endurance"
	GoalMaintenance GoalType = "Maintenance"
)

func (gt GoalType) Valid() bool {
	switch gt {
	case GoalFatLoss, GoalMuscleGain, GoalEndurance, GoalMaintenance:
		return true
	}
	return false
}

// WorkoutRecord is immutable once created, removed only via explicit delete
type WorkoutRecord struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	ExerciseName    string    `json:"exerciseName"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	WeightKg        float64   `json:"weightKg"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
}

type NutritionRecord struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	TotalCalories int       `json:"totalCalories"`
	ProteinGrams  float64   `json:"proteinGrams"`
	CarbGrams     float64   `json:"carbGrams"`
	FatGrams      float64   `json:"fatGrams"`
}

// TrendPoint is appended on every profile update/setup event, ordered by date
type TrendPoint struct {
	Date           time.Time `json:"date"`
	WeightKg       float64   `json:"weightKg"`
	BodyFatPercent float64   `json:"bodyFatPercent"`
}

type Goals struct {
	TargetWeightKg       float64  `json:"targetWeightKg"`
	TargetBodyFatPercent float64  `json:"targetBodyFatPercent"`
	GoalType             GoalType `json:"goalType"`
}

type Profile struct {
	DisplayName string `json:"displayName"`
}

// HabitRecord holds passively logged habits (steps, water)
type HabitRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Steps       int       `json:"steps"`
	WaterLiters float64   `json:"waterLiters"`
}

// UserState is the aggregate root - the entire tracked data of one user.
// Exactly one UserState exists per authenticated identity.
type UserState struct {
	Profile     Profile           `json:"profile"`
	Goals       Goals             `json:"goals"`
	Workouts    []WorkoutRecord   `json:"workouts"`
	Nutrition   []NutritionRecord `json:"nutrition"`
	TrendPoints []TrendPoint      `json:"trendPoints"`
	Habits      []HabitRecord     `json:"habits"`
	Insights    []string          `json:"insights"`
}

// Normalize makes sure the state invariants around nil slices hold:
// an empty insights list is the "no insight yet" state, never absence.
func (s *UserState) Normalize() {
	if s.Insights == nil {
		s.Insights = []string{}
	}
	if s.Workouts == nil {
		s.Workouts = []WorkoutRecord{}
	}
	if s.Nutrition == nil {
		s.Nutrition = []NutritionRecord{}
	}
	if s.TrendPoints == nil {
		s.TrendPoints = []TrendPoint{}
	}
	if s.Habits == nil {
		s.Habits = []HabitRecord{}
	}
}

func (s *UserState) Validate() error {
	if !s.Goals.GoalType.Valid() {
		return fmt.Errorf("invalid goal type: %q", s.Goals.GoalType)
	}
	if s.Goals.TargetWeightKg < 0 || s.Goals.TargetBodyFatPercent < 0 {
		return errors.New("goal values must be non-negative")
	}

	workoutIDs := make(map[string]bool, len(s.Workouts))
	for _, w := range s.Workouts {
		if w.Date.IsZero() {
			return fmt.Errorf("workout %s: date not set", w.ID)
		}
		if workoutIDs[w.ID] {
			return fmt.Errorf("duplicate workout id: %s", w.ID)
		}
		workoutIDs[w.ID] = true
	}

	nutritionIDs := make(map[string]bool, len(s.Nutrition))
	for _, n := range s.Nutrition {
		if n.Date.IsZero() {
			return fmt.Errorf("nutrition record %s: date not set", n.ID)
		}
		if nutritionIDs[n.ID] {
			return fmt.Errorf("duplicate nutrition record id: %s", n.ID)
		}
		nutritionIDs[n.ID] = true
	}

	return nil
}

// Clone returns a deep copy, so that pending and confirmed states never share slices
func (s *UserState) Clone() *UserState {
	if s == nil {
		return nil
	}
	clone := &UserState{
		Profile:     s.Profile,
		Goals:       s.Goals,
		Workouts:    make([]WorkoutRecord, len(s.Workouts)),
		Nutrition:   make([]NutritionRecord, len(s.Nutrition)),
		TrendPoints: make([]TrendPoint, len(s.TrendPoints)),
		Habits:      make([]HabitRecord, len(s.Habits)),
		Insights:    make([]string, len(s.Insights)),
	}
	copy(clone.Workouts, s.Workouts)
	copy(clone.Nutrition, s.Nutrition)
	copy(clone.TrendPoints, s.TrendPoints)
	copy(clone.Habits, s.Habits)
	copy(clone.Insights, s.Insights)
	return clone
}
