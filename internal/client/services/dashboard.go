package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/client/client"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/stats"
)

// Dashboard builds the daily summary on the client from the resolved
// profile and the day's logs. Lookups that fail degrade to defaults and
// empty lists; only an authentication failure is returned, so the caller
// can refresh the session and retry.
type Dashboard struct {
	api      client.Client
	profiles *ProfileResolver
	logger   logging.Logger
	today    func() string
}

func NewDashboard(api client.Client, profiles *ProfileResolver, logger logging.Logger) *Dashboard {
	return &Dashboard{
		api:      api,
		profiles: profiles,
		logger:   logger,
		today:    func() string { return time.Now().Format(common.DateLayout) },
	}
}

// Daily returns the summary for date (today when empty).
func (d *Dashboard) Daily(ctx context.Context, sess *models.Session, date string) (*models.DailyStatsSnapshot, error) {
	if !sess.Valid() {
		return nil, common.ErrNoSession
	}
	date, err := d.date(date)
	if err != nil {
		return nil, err
	}

	profile, err := d.profiles.Resolve(ctx, sess)
	if err != nil {
		if authFailure(err) {
			return nil, err
		}
		d.logger.Warn(ctx, "profile unavailable, using defaults", "error", err)
		fallback := models.User{}.WithDefaults()
		profile = &fallback
	}

	meals, err := d.api.Meals(ctx, sess.AccessToken, date)
	if err != nil {
		if authFailure(err) {
			return nil, translate(err)
		}
		d.logger.Warn(ctx, "meals unavailable", "date", date, "error", err)
		meals = nil
	}

	workouts, err := d.api.Workouts(ctx, sess.AccessToken, date)
	if err != nil {
		if authFailure(err) {
			return nil, translate(err)
		}
		d.logger.Warn(ctx, "workouts unavailable", "date", date, "error", err)
		workouts = nil
	}

	snap := stats.Aggregate(date, meals, workouts, profile.Goals())
	return &snap, nil
}

// AddMeal logs a meal for the session's principal. MealDate defaults to today.
func (d *Dashboard) AddMeal(ctx context.Context, sess *models.Session, meal models.MealLog) (*models.MealLog, error) {
	if !sess.Valid() {
		return nil, common.ErrNoSession
	}
	date, err := d.date(meal.MealDate)
	if err != nil {
		return nil, err
	}
	meal.MealDate = date

	created, err := d.api.AddMeal(ctx, sess.AccessToken, meal)
	if err != nil {
		return nil, passThrough(err)
	}
	return created, nil
}

// AddWorkout logs a workout for the session's principal.
func (d *Dashboard) AddWorkout(ctx context.Context, sess *models.Session, w models.WorkoutLog) (*models.WorkoutLog, error) {
	if !sess.Valid() {
		return nil, common.ErrNoSession
	}
	date, err := d.date(w.WorkoutDate)
	if err != nil {
		return nil, err
	}
	w.WorkoutDate = date

	created, err := d.api.AddWorkout(ctx, sess.AccessToken, w)
	if err != nil {
		return nil, passThrough(err)
	}
	return created, nil
}

func (d *Dashboard) date(date string) (string, error) {
	if date == "" {
		return d.today(), nil
	}
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		return "", common.NewValidationError(fmt.Sprintf("date must be YYYY-MM-DD, got %q", date))
	}
	return date, nil
}

func authFailure(err error) bool {
	return errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrorUnauthorized)
}

// passThrough keeps validation messages from the server and reduces
// everything else to the taxonomy.
func passThrough(err error) error {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return translate(err)
}
