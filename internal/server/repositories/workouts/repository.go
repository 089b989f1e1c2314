// Package workouts stores the user's workout log entries.
package workouts

import (
	"context"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

type Repository interface {
	Create(ctx context.Context, workout *models.WorkoutLog) (*models.WorkoutLog, error)
	ListByDate(ctx context.Context, userID, date string) ([]models.WorkoutLog, error)
}
