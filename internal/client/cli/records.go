package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// Profile prints the resolved profile.
func (a *App) Profile(ctx context.Context) error {
	err := a.withSession(ctx, func(sess *models.Session) error {
		u, err := a.profiles.Resolve(ctx, sess)
		if err != nil {
			return err
		}
		renderProfile(a.out, u)
		return nil
	})
	a.report(err)
	return err
}

// Stats prints the daily summary for date (today when empty).
func (a *App) Stats(ctx context.Context, date string) error {
	err := a.withSession(ctx, func(sess *models.Session) error {
		snap, err := a.dashboard.Daily(ctx, sess, date)
		if err != nil {
			return err
		}
		renderStats(a.out, snap)
		return nil
	})
	a.report(err)
	return err
}

// AddMeal prompts for a meal and logs it.
func (a *App) AddMeal(ctx context.Context) error {
	meal, err := a.readMeal()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	err = a.withSession(ctx, func(sess *models.Session) error {
		created, err := a.dashboard.AddMeal(ctx, sess, meal)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Logged %s on %s: %.0f kcal\n", created.MealType, created.MealDate, created.TotalCalories)
		return nil
	})
	a.report(err)
	return err
}

// AddWorkout prompts for a workout and logs it.
func (a *App) AddWorkout(ctx context.Context) error {
	w, err := a.readWorkout()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	err = a.withSession(ctx, func(sess *models.Session) error {
		created, err := a.dashboard.AddWorkout(ctx, sess, w)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Logged %s on %s: %d min, %.0f kcal\n", created.WorkoutType, created.WorkoutDate, created.DurationMinutes, created.CaloriesBurned)
		return nil
	})
	a.report(err)
	return err
}

func (a *App) readMeal() (models.MealLog, error) {
	var m models.MealLog
	var err error

	if m.MealType, err = getSimpleText(a.reader, "Meal (breakfast, morning_snack, lunch, afternoon_snack, dinner, evening_snack, other)", a.out); err != nil {
		return m, err
	}
	if m.TotalCalories, err = GetNumber(a.reader, "Calories (kcal)", a.out); err != nil {
		return m, err
	}
	if m.TotalProteinG, err = GetNumber(a.reader, "Protein (g)", a.out); err != nil {
		return m, err
	}
	if m.TotalCarbsG, err = GetNumber(a.reader, "Carbs (g)", a.out); err != nil {
		return m, err
	}
	if m.TotalFatsG, err = GetNumber(a.reader, "Fats (g)", a.out); err != nil {
		return m, err
	}
	if m.MealDate, err = getSimpleText(a.reader, "Date YYYY-MM-DD [today]", a.out); err != nil {
		return m, err
	}
	return m, nil
}

func (a *App) readWorkout() (models.WorkoutLog, error) {
	var w models.WorkoutLog
	var err error

	if w.WorkoutType, err = getSimpleText(a.reader, "Workout type (cardio, strength, flexibility, sports, other)", a.out); err != nil {
		return w, err
	}
	if w.WorkoutName, err = getSimpleText(a.reader, "Name (optional)", a.out); err != nil {
		return w, err
	}
	minutes, err := GetNumber(a.reader, "Duration (minutes)", a.out)
	if err != nil {
		return w, err
	}
	w.DurationMinutes = int(math.Round(minutes))
	if w.CaloriesBurned, err = GetNumber(a.reader, "Calories burned (kcal)", a.out); err != nil {
		return w, err
	}
	if w.Intensity, err = getSimpleText(a.reader, "Intensity (low, moderate, high, very_high) [none]", a.out); err != nil {
		return w, err
	}
	if w.WorkoutDate, err = getSimpleText(a.reader, "Date YYYY-MM-DD [today]", a.out); err != nil {
		return w, err
	}
	return w, nil
}
