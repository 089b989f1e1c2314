// Package meals stores the user's meal log entries.
package meals

import (
	"context"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

type Repository interface {
	Create(ctx context.Context, meal *models.MealLog) (*models.MealLog, error)
	// ListByDate returns the user's meals for date (YYYY-MM-DD), oldest first.
	ListByDate(ctx context.Context, userID, date string) ([]models.MealLog, error)
}
