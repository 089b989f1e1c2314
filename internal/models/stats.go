package models

// MetricStats is the goal-relative figure for one metric of the day.
// Percentage is the raw rounded ratio and may exceed 100; Progress is the
// same value clamped to [0, 100] for progress bars.
type MetricStats struct {
	Consumed   float64 `json:"consumed"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage int     `json:"percentage"`
	Progress   int     `json:"progress"`
}

// DailyStatsSnapshot is derived from logs and goals on every request and is
// never stored.
type DailyStatsSnapshot struct {
	Date           string      `json:"date"`
	Calories       MetricStats `json:"calories"`
	CaloriesBurned float64     `json:"calories_burned"`
	Protein        MetricStats `json:"protein"`
	Carbs          MetricStats `json:"carbs"`
	Fats           MetricStats `json:"fats"`
	MealsCount     int         `json:"meals_count"`
	WorkoutsCount  int         `json:"workouts_count"`
}
