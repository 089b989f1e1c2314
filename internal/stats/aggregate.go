// Package stats turns a day's meal and workout logs into a goal-relative
// summary. Everything here is a pure function of its inputs.
package stats

import (
	"math"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// Aggregate computes the snapshot for date from the given logs and goals.
//
// Entries dated on another day are skipped. Burned calories are reported
// separately and never added back into the calorie budget: remaining is
// always goal minus consumed. Missing, negative or non-finite numbers count
// as zero, and a zero or absent goal yields a zero percentage.
func Aggregate(date string, meals []models.MealLog, workouts []models.WorkoutLog, goals models.Goals) models.DailyStatsSnapshot {
	var (
		calories, protein, carbs, fats float64
		burned                         float64
		mealsCount, workoutsCount      int
	)

	for _, m := range meals {
		if m.MealDate != date {
			continue
		}
		mealsCount++
		calories += sanitize(m.TotalCalories)
		protein += sanitize(m.TotalProteinG)
		carbs += sanitize(m.TotalCarbsG)
		fats += sanitize(m.TotalFatsG)
	}

	for _, w := range workouts {
		if w.WorkoutDate != date {
			continue
		}
		workoutsCount++
		burned += sanitize(w.CaloriesBurned)
	}

	return models.DailyStatsSnapshot{
		Date:           date,
		Calories:       metric(calories, goals.Calories),
		CaloriesBurned: burned,
		Protein:        metric(protein, goals.ProteinG),
		Carbs:          metric(carbs, goals.CarbsG),
		Fats:           metric(fats, goals.FatsG),
		MealsCount:     mealsCount,
		WorkoutsCount:  workoutsCount,
	}
}

func metric(consumed float64, goal *float64) models.MetricStats {
	g := 0.0
	if goal != nil {
		g = sanitize(*goal)
	}
	pct := Percentage(consumed, g)
	return models.MetricStats{
		Consumed:   consumed,
		Goal:       g,
		Remaining:  g - consumed,
		Percentage: pct,
		Progress:   Clamp(pct),
	}
}

// Percentage returns round(consumed/goal*100), or 0 when goal is not positive.
func Percentage(consumed, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(consumed / goal * 100))
}

// Clamp bounds a percentage to [0, 100].
func Clamp(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
