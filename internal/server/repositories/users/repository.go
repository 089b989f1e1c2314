// Package users declares the repository contract for stored accounts.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/server/models"
)

type Repository interface {
	// Create inserts the account and returns it with server-assigned fields.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	// GetUserByEmail returns common.ErrorNotFound for unknown emails.
	GetUserByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
