package provider

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/cryptox"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	servermodels "github.com/dmitrijs2005/nutritrack/internal/server/models"
	"github.com/google/uuid"
)

// MockProvider keeps everything in memory. It is selected when the server
// runs without a database and loses all state on restart.
type MockProvider struct {
	mu       sync.RWMutex
	byEmail  map[string]*servermodels.Account
	byID     map[string]*servermodels.Account
	refresh  map[string]servermodels.RefreshToken
	meals    []models.MealLog
	workouts []models.WorkoutLog
	opts     Options
	now      func() time.Time
}

func NewMockProvider(opts Options) *MockProvider {
	return &MockProvider{
		byEmail: make(map[string]*servermodels.Account),
		byID:    make(map[string]*servermodels.Account),
		refresh: make(map[string]servermodels.RefreshToken),
		opts:    opts,
		now:     time.Now,
	}
}

func (m *MockProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	m.mu.RLock()
	account, ok := m.byEmail[strings.ToLower(email)]
	m.mu.RUnlock()

	if !ok {
		cryptox.BurnCompare([]byte(password), m.opts.HashCost)
		return nil, common.ErrInvalidCredentials
	}
	if !cryptox.CheckPassword(account.PasswordHash, []byte(password)) || !account.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	account.LastLoginAt = &now
	account.UpdatedAt = now

	pair, err := m.issueLocked(account.ID)
	if err != nil {
		return nil, err
	}
	return &Identity{User: account.User, TokenPair: *pair}, nil
}

func (m *MockProvider) SignUp(ctx context.Context, sp SignUpParams) (*Identity, error) {
	hash, err := cryptox.HashPassword([]byte(sp.Password), m.opts.HashCost)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(sp.Email)
	if _, taken := m.byEmail[key]; taken {
		return nil, common.ErrorAlreadyExists
	}

	now := m.now().UTC()
	account := &servermodels.Account{
		User: models.User{
			ID:                   uuid.NewString(),
			Email:                sp.Email,
			Name:                 sp.Name,
			HeightCM:             sp.HeightCM,
			WeightKG:             sp.WeightKG,
			BirthDate:            sp.BirthDate,
			Gender:               sp.Gender,
			GoalType:             sp.GoalType,
			ActivityLevel:        sp.ActivityLevel,
			CaloriesGoal:         sp.CaloriesGoal,
			SubscriptionStatus:   models.DefaultSubscription,
			PreferredLanguage:    models.DefaultPreferredLanguage,
			Timezone:             models.DefaultTimezone,
			NotificationsEnabled: true,
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		PasswordHash: hash,
	}

	pair, err := m.issueLocked(account.ID)
	if err != nil {
		return nil, err
	}
	m.byEmail[key] = account
	m.byID[account.ID] = account

	return &Identity{User: account.User, TokenPair: *pair}, nil
}

func (m *MockProvider) SignOut(ctx context.Context, userID, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if userID == "" {
		delete(m.refresh, refreshToken)
		return nil
	}
	for tok, rt := range m.refresh {
		if rt.UserID == userID {
			delete(m.refresh, tok)
		}
	}
	return nil
}

func (m *MockProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rt, ok := m.refresh[refreshToken]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	delete(m.refresh, refreshToken)
	if rt.Expired(m.now()) {
		return nil, common.ErrRefreshTokenExpired
	}
	return m.issueLocked(rt.UserID)
}

func (m *MockProvider) Profile(ctx context.Context, userID string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.byID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := account.User
	return &u, nil
}

func (m *MockProvider) ListMeals(ctx context.Context, userID, date string) ([]models.MealLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.MealLog{}
	for _, meal := range m.meals {
		if meal.UserID == userID && meal.MealDate == date {
			out = append(out, meal)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockProvider) AddMeal(ctx context.Context, meal *models.MealLog) (*models.MealLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *meal
	stored.ID = uuid.NewString()
	stored.CreatedAt = m.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	m.meals = append(m.meals, stored)
	return &stored, nil
}

func (m *MockProvider) ListWorkouts(ctx context.Context, userID, date string) ([]models.WorkoutLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.WorkoutLog{}
	for _, w := range m.workouts {
		if w.UserID == userID && w.WorkoutDate == date {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockProvider) AddWorkout(ctx context.Context, w *models.WorkoutLog) (*models.WorkoutLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *w
	stored.ID = uuid.NewString()
	stored.CreatedAt = m.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	m.workouts = append(m.workouts, stored)
	return &stored, nil
}

// issueLocked mints a token pair; m.mu must be held for writing.
func (m *MockProvider) issueLocked(userID string) (*TokenPair, error) {
	access, err := m.opts.Issuer.Issue(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	now := m.now()
	m.refresh[refresh] = servermodels.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     refresh,
		Expires:   now.Add(m.opts.RefreshTokenTTL),
		CreatedAt: now,
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
