package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_WithDefaults_FillsUnsetFields(t *testing.T) {
	u := User{ID: "u1", Email: "ana@example.org", Name: "Ana"}

	got := u.WithDefaults()

	require.NotNil(t, got.CaloriesGoal)
	assert.Equal(t, float64(DefaultCaloriesGoal), *got.CaloriesGoal)
	assert.Equal(t, float64(DefaultHeightCM), *got.HeightCM)
	assert.Equal(t, float64(DefaultWeightKG), *got.WeightKG)
	assert.Equal(t, GoalLoseWeight, got.GoalType)
	assert.Equal(t, ActivityModerate, got.ActivityLevel)
	assert.Equal(t, "u1", got.ID)
	assert.Nil(t, got.ProteinGoalG)

	// receiver untouched
	assert.Nil(t, u.CaloriesGoal)
}

func TestUser_WithDefaults_KeepsSetFields(t *testing.T) {
	u := User{
		GoalType:      GoalGainMuscle,
		ActivityLevel: ActivityVeryActive,
		CaloriesGoal:  Float(2600),
		HeightCM:      Float(181),
	}

	got := u.WithDefaults()

	assert.Equal(t, 2600.0, *got.CaloriesGoal)
	assert.Equal(t, 181.0, *got.HeightCM)
	assert.Equal(t, GoalGainMuscle, got.GoalType)
	assert.Equal(t, ActivityVeryActive, got.ActivityLevel)
}

func TestUser_WithDefaults_ReplacesUnknownEnums(t *testing.T) {
	got := User{GoalType: "bulk", ActivityLevel: "couch"}.WithDefaults()
	assert.Equal(t, DefaultGoalType, got.GoalType)
	assert.Equal(t, DefaultActivityLevel, got.ActivityLevel)
}

func TestSession_Valid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{AccessToken: "a"}).Valid())
	assert.False(t, (&Session{RefreshToken: "r"}).Valid())
	assert.True(t, (&Session{AccessToken: "a", RefreshToken: "r"}).Valid())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidMealType("lunch"))
	assert.False(t, ValidMealType("brunch"))
	assert.True(t, ValidWorkoutType("cardio"))
	assert.False(t, ValidWorkoutType("yoga"))
	assert.True(t, ValidIntensity(""))
	assert.False(t, ValidIntensity("extreme"))
}
