package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/nutritrack/internal/client/client"
	"github.com/dmitrijs2005/nutritrack/internal/client/session"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client with canned results.
type fakeClient struct {
	loginRes *client.AuthResult
	loginErr error

	registerRes  *client.AuthResult
	registerErr  error
	lastRegister client.RegisterRequest

	logoutErr    error
	logoutCalls  int
	lastLogoutRT string
	refreshRes   *client.TokenPair
	refreshErr   error

	profile    *models.User
	profileErr error

	meals       []models.MealLog
	mealsErr    error
	workouts    []models.WorkoutLog
	workoutsErr error

	addMealErr    error
	addWorkoutErr error
	lastMeal      models.MealLog
	lastWorkout   models.WorkoutLog
	lastToken     string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, _, _ string) (*client.AuthResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, req client.RegisterRequest) (*client.AuthResult, error) {
	f.lastRegister = req
	return f.registerRes, f.registerErr
}

func (f *fakeClient) Logout(_ context.Context, _, refreshToken string) error {
	f.logoutCalls++
	f.lastLogoutRT = refreshToken
	return f.logoutErr
}

func (f *fakeClient) Refresh(context.Context, string) (*client.TokenPair, error) {
	return f.refreshRes, f.refreshErr
}

func (f *fakeClient) Profile(_ context.Context, token string) (*models.User, error) {
	f.lastToken = token
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if f.profile == nil {
		return nil, common.ErrorNotFound
	}
	u := *f.profile
	return &u, nil
}

func (f *fakeClient) Meals(context.Context, string, string) ([]models.MealLog, error) {
	return f.meals, f.mealsErr
}

func (f *fakeClient) AddMeal(_ context.Context, _ string, meal models.MealLog) (*models.MealLog, error) {
	f.lastMeal = meal
	if f.addMealErr != nil {
		return nil, f.addMealErr
	}
	meal.ID = "m-1"
	return &meal, nil
}

func (f *fakeClient) Workouts(context.Context, string, string) ([]models.WorkoutLog, error) {
	return f.workouts, f.workoutsErr
}

func (f *fakeClient) AddWorkout(_ context.Context, _ string, w models.WorkoutLog) (*models.WorkoutLog, error) {
	f.lastWorkout = w
	if f.addWorkoutErr != nil {
		return nil, f.addWorkoutErr
	}
	w.ID = "w-1"
	return &w, nil
}

func (f *fakeClient) Ping(context.Context) error { return nil }

func newStore(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewStore(db), db
}

func authOK(id string) *client.AuthResult {
	return &client.AuthResult{
		User:         models.User{ID: id, Email: id + "@example.com", Name: "Ana"},
		Token:        "access-" + id,
		RefreshToken: "refresh-" + id,
	}
}

func validSession() *models.Session {
	return &models.Session{AccessToken: "a", RefreshToken: "r", PrincipalID: "u-1"}
}
