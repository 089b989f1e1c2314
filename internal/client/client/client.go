package client

import (
	"context"

	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// AuthResult is what the server returns on login and registration.
type AuthResult struct {
	User         models.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// TokenPair is what the server returns on refresh.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest carries the sign-up form. Only name, email and password
// are required; the rest is optional profile data.
type RegisterRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	GoalType      string   `json:"goal_type,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	HeightCM      *float64 `json:"height_cm,omitempty"`
	WeightKG      *float64 `json:"weight_kg,omitempty"`
	BirthDate     string   `json:"birth_date,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	CaloriesGoal  *float64 `json:"calories_goal,omitempty"`
}

// Client is the API contract with the nutritrack server. Calls that act on
// behalf of a principal take its access token explicitly; the client keeps
// no session state of its own.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	Profile(ctx context.Context, accessToken string) (*models.User, error)
	Meals(ctx context.Context, accessToken, date string) ([]models.MealLog, error)
	AddMeal(ctx context.Context, accessToken string, meal models.MealLog) (*models.MealLog, error)
	Workouts(ctx context.Context, accessToken, date string) ([]models.WorkoutLog, error)
	AddWorkout(ctx context.Context, accessToken string, workout models.WorkoutLog) (*models.WorkoutLog, error)

	Ping(ctx context.Context) error
}
