// Package provider hides where identities and log records live. Two
// backends exist: PostgresProvider for real deployments and MockProvider,
// an in-memory stand-in used when no database is configured.
//
// Both issue the same JWT access tokens, so the HTTP layer does not care
// which one is active.
package provider

import (
	"context"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Identity is the outcome of a successful sign-in or sign-up.
type Identity struct {
	User models.User
	TokenPair
}

// SignUpParams is a new account. Email, Password and Name are required;
// the caller has already normalised GoalType and ActivityLevel.
type SignUpParams struct {
	Email         string
	Password      string
	Name          string
	HeightCM      *float64
	WeightKG      *float64
	BirthDate     string
	Gender        string
	GoalType      models.GoalType
	ActivityLevel models.ActivityLevel
	CaloriesGoal  *float64
}

// IdentityProvider verifies credentials and manages token lifecycles.
type IdentityProvider interface {
	// SignIn returns common.ErrInvalidCredentials for an unknown email or
	// a wrong password. Other errors mean the backend failed.
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	// SignUp returns common.ErrorAlreadyExists when the email is taken.
	SignUp(ctx context.Context, p SignUpParams) (*Identity, error)
	// SignOut revokes refresh tokens. userID wins over refreshToken when
	// both are set.
	SignOut(ctx context.Context, userID, refreshToken string) error
	// Refresh rotates refreshToken. Unknown tokens yield
	// common.ErrorUnauthorized, expired ones common.ErrRefreshTokenExpired.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// RecordStore is the per-user tabular data: profile and daily logs.
type RecordStore interface {
	// Profile returns common.ErrorNotFound when userID has no row.
	Profile(ctx context.Context, userID string) (*models.User, error)
	ListMeals(ctx context.Context, userID, date string) ([]models.MealLog, error)
	AddMeal(ctx context.Context, meal *models.MealLog) (*models.MealLog, error)
	ListWorkouts(ctx context.Context, userID, date string) ([]models.WorkoutLog, error)
	AddWorkout(ctx context.Context, workout *models.WorkoutLog) (*models.WorkoutLog, error)
}

// Backend is what the server wires: one value serving both roles.
type Backend interface {
	IdentityProvider
	RecordStore
}
