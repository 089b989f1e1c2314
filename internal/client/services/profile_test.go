package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tierFunc func(context.Context, *models.Session) (*models.User, error)

func (f tierFunc) Lookup(ctx context.Context, sess *models.Session) (*models.User, error) {
	return f(ctx, sess)
}

func TestResolve_CacheHitSkipsServer(t *testing.T) {
	api := &fakeClient{profileErr: errors.New("must not be called")}
	r := DefaultProfileResolver(api, logging.Nop())

	sess := validSession()
	sess.Profile = &models.User{ID: "u-1", Name: "Ana", ProteinGoalG: models.Float(120)}

	u, err := r.Resolve(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, 2000.0, *u.CaloriesGoal)
	assert.Equal(t, 120.0, *u.ProteinGoalG)
	assert.Equal(t, models.GoalLoseWeight, u.GoalType)
	assert.Equal(t, models.ActivityModerate, u.ActivityLevel)
	assert.Nil(t, sess.Profile.CaloriesGoal, "cached snapshot is not modified")
	assert.Empty(t, api.lastToken)
}

func TestResolve_FallsBackToServer(t *testing.T) {
	api := &fakeClient{profile: &models.User{ID: "u-1", Name: "Remote", CaloriesGoal: models.Float(1800)}}
	r := DefaultProfileResolver(api, logging.Nop())

	u, err := r.Resolve(context.Background(), validSession())
	require.NoError(t, err)
	assert.Equal(t, "Remote", u.Name)
	assert.Equal(t, 1800.0, *u.CaloriesGoal)
	assert.Equal(t, "a", api.lastToken)
}

func TestResolve_NotFoundAnywhere(t *testing.T) {
	r := DefaultProfileResolver(&fakeClient{}, logging.Nop())

	_, err := r.Resolve(context.Background(), validSession())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResolve_NoSession(t *testing.T) {
	r := DefaultProfileResolver(&fakeClient{}, logging.Nop())

	_, err := r.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNoSession)
	_, err = r.Resolve(context.Background(), &models.Session{AccessToken: "a"})
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestResolve_TranslatesTierErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"network", common.ErrNetwork, common.ErrNetwork},
		{"expired", common.ErrTokenExpired, common.ErrTokenExpired},
		{"unauthorized", common.ErrorUnauthorized, common.ErrorUnauthorized},
		{"anything else", errors.New("pq: connection reset"), common.ErrUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultProfileResolver(&fakeClient{profileErr: tt.err}, logging.Nop())

			_, err := r.Resolve(context.Background(), validSession())
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestResolve_TiersInOrder(t *testing.T) {
	var calls []string
	tier := func(name string, u *models.User, err error) ProfileTier {
		return tierFunc(func(context.Context, *models.Session) (*models.User, error) {
			calls = append(calls, name)
			return u, err
		})
	}

	r := NewProfileResolver(logging.Nop(),
		tier("first", nil, common.ErrorNotFound),
		tier("second", &models.User{ID: "u-2"}, nil),
		tier("third", &models.User{ID: "u-3"}, nil),
	)

	u, err := r.Resolve(context.Background(), validSession())
	require.NoError(t, err)
	assert.Equal(t, "u-2", u.ID)
	assert.Equal(t, []string{"first", "second"}, calls)
}
