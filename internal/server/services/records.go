package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/provider"
	"github.com/dmitrijs2005/nutritrack/internal/stats"
)

// RecordService serves the authenticated principal's profile and logs.
type RecordService struct {
	store provider.RecordStore
}

func NewRecordService(store provider.RecordStore) *RecordService {
	return &RecordService{store: store}
}

func (s *RecordService) Profile(ctx context.Context, principalID string) (*models.User, error) {
	return s.store.Profile(ctx, principalID)
}

func (s *RecordService) Meals(ctx context.Context, principalID, date string) ([]models.MealLog, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	return s.store.ListMeals(ctx, principalID, date)
}

func (s *RecordService) Workouts(ctx context.Context, principalID, date string) ([]models.WorkoutLog, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	return s.store.ListWorkouts(ctx, principalID, date)
}

// AddMeal stores meal for principalID. The owner is always the principal,
// whatever the payload says.
func (s *RecordService) AddMeal(ctx context.Context, principalID string, meal models.MealLog) (*models.MealLog, error) {
	if !models.ValidMealType(meal.MealType) {
		return nil, common.NewValidationError(fmt.Sprintf("unknown meal type %q", meal.MealType))
	}
	if err := checkDate(meal.MealDate); err != nil {
		return nil, err
	}
	for _, v := range []float64{meal.TotalCalories, meal.TotalProteinG, meal.TotalCarbsG, meal.TotalFatsG} {
		if !nonNegative(v) {
			return nil, common.NewValidationError("meal totals must be non-negative numbers")
		}
	}
	meal.UserID = principalID
	return s.store.AddMeal(ctx, &meal)
}

func (s *RecordService) AddWorkout(ctx context.Context, principalID string, w models.WorkoutLog) (*models.WorkoutLog, error) {
	if !models.ValidWorkoutType(w.WorkoutType) {
		return nil, common.NewValidationError(fmt.Sprintf("unknown workout type %q", w.WorkoutType))
	}
	if !models.ValidIntensity(w.Intensity) {
		return nil, common.NewValidationError(fmt.Sprintf("unknown intensity %q", w.Intensity))
	}
	if err := checkDate(w.WorkoutDate); err != nil {
		return nil, err
	}
	if w.DurationMinutes < 0 || !nonNegative(w.CaloriesBurned) {
		return nil, common.NewValidationError("duration and calories must be non-negative")
	}
	w.UserID = principalID
	return s.store.AddWorkout(ctx, &w)
}

// DailyStats recomputes the summary for date from the stored logs and the
// principal's goals. Nothing is persisted.
func (s *RecordService) DailyStats(ctx context.Context, principalID, date string) (*models.DailyStatsSnapshot, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}

	profile, err := s.store.Profile(ctx, principalID)
	if err != nil {
		return nil, err
	}
	meals, err := s.store.ListMeals(ctx, principalID, date)
	if err != nil {
		return nil, err
	}
	workouts, err := s.store.ListWorkouts(ctx, principalID, date)
	if err != nil {
		return nil, err
	}

	snap := stats.Aggregate(date, meals, workouts, profile.WithDefaults().Goals())
	return &snap, nil
}

func checkDate(date string) error {
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		return common.NewValidationError(fmt.Sprintf("date must be YYYY-MM-DD, got %q", date))
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
