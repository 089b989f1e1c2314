package models

import "time"

// MealLog is one logged meal with its precomputed totals.
type MealLog struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	MealType      string    `json:"meal_type"`
	MealDate      string    `json:"meal_date"`
	MealTime      string    `json:"meal_time,omitempty"`
	TotalCalories float64   `json:"total_calories"`
	TotalProteinG float64   `json:"total_protein_g"`
	TotalCarbsG   float64   `json:"total_carbs_g"`
	TotalFatsG    float64   `json:"total_fats_g"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WorkoutLog is one logged training session.
type WorkoutLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	WorkoutType     string    `json:"workout_type"`
	WorkoutName     string    `json:"workout_name,omitempty"`
	WorkoutDate     string    `json:"workout_date"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	Intensity       string    `json:"intensity,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

var mealTypes = map[string]struct{}{
	"breakfast": {}, "morning_snack": {}, "lunch": {}, "afternoon_snack": {},
	"dinner": {}, "evening_snack": {}, "other": {},
}

var workoutTypes = map[string]struct{}{
	"cardio": {}, "strength": {}, "flexibility": {}, "sports": {}, "other": {},
}

var intensities = map[string]struct{}{
	"": {}, "low": {}, "moderate": {}, "high": {}, "very_high": {},
}

// ValidMealType reports whether t is a known meal slot.
func ValidMealType(t string) bool {
	_, ok := mealTypes[t]
	return ok
}

// ValidWorkoutType reports whether t is a known workout category.
func ValidWorkoutType(t string) bool {
	_, ok := workoutTypes[t]
	return ok
}

// ValidIntensity reports whether i is empty or a known intensity.
func ValidIntensity(i string) bool {
	_, ok := intensities[i]
	return ok
}
