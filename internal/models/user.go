// Package models holds the domain types shared by the nutritrack server and
// client: the user profile, the session, log entries and the daily summary.
package models

import "time"

// GoalType is the user's body-composition objective.
type GoalType string

const (
	GoalLoseWeight GoalType = "lose_weight"
	GoalGainWeight GoalType = "gain_weight"
	GoalMaintain   GoalType = "maintain"
	GoalGainMuscle GoalType = "gain_muscle"
)

// Valid reports whether g is one of the known goal types.
func (g GoalType) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainWeight, GoalMaintain, GoalGainMuscle:
		return true
	}
	return false
}

// ActivityLevel describes how active the user is day to day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Valid reports whether a is one of the known activity levels.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Profile defaults applied when a field is unset.
const (
	DefaultCaloriesGoal      = 2000
	DefaultHeightCM          = 170
	DefaultWeightKG          = 70
	DefaultGoalType          = GoalLoseWeight
	DefaultActivityLevel     = ActivityModerate
	DefaultSubscription      = "free"
	DefaultPreferredLanguage = "pt-BR"
	DefaultTimezone          = "America/Sao_Paulo"
)

// User is a principal's profile. Nutrition goals are nullable; use
// WithDefaults before reading them for display.
type User struct {
	ID                   string        `json:"id"`
	Email                string        `json:"email"`
	Name                 string        `json:"name"`
	HeightCM             *float64      `json:"height_cm,omitempty"`
	WeightKG             *float64      `json:"weight_kg,omitempty"`
	BirthDate            string        `json:"birth_date,omitempty"`
	Gender               string        `json:"gender,omitempty"`
	GoalType             GoalType      `json:"goal_type"`
	ActivityLevel        ActivityLevel `json:"activity_level"`
	CaloriesGoal         *float64      `json:"calories_goal,omitempty"`
	ProteinGoalG         *float64      `json:"protein_goal_g,omitempty"`
	CarbsGoalG           *float64      `json:"carbs_goal_g,omitempty"`
	FatsGoalG            *float64      `json:"fats_goal_g,omitempty"`
	SubscriptionStatus   string        `json:"subscription_status,omitempty"`
	PreferredLanguage    string        `json:"preferred_language,omitempty"`
	Timezone             string        `json:"timezone,omitempty"`
	NotificationsEnabled bool          `json:"notifications_enabled"`
	EmailVerified        bool          `json:"email_verified"`
	IsActive             bool          `json:"is_active"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
	LastLoginAt          *time.Time    `json:"last_login_at,omitempty"`
}

// WithDefaults returns a copy of u where unset fields carry the profile
// defaults. The receiver is not modified. ID and email are never touched.
func (u User) WithDefaults() User {
	if u.HeightCM == nil {
		u.HeightCM = Float(DefaultHeightCM)
	}
	if u.WeightKG == nil {
		u.WeightKG = Float(DefaultWeightKG)
	}
	if u.CaloriesGoal == nil {
		u.CaloriesGoal = Float(DefaultCaloriesGoal)
	}
	if !u.GoalType.Valid() {
		u.GoalType = DefaultGoalType
	}
	if !u.ActivityLevel.Valid() {
		u.ActivityLevel = DefaultActivityLevel
	}
	if u.SubscriptionStatus == "" {
		u.SubscriptionStatus = DefaultSubscription
	}
	if u.PreferredLanguage == "" {
		u.PreferredLanguage = DefaultPreferredLanguage
	}
	if u.Timezone == "" {
		u.Timezone = DefaultTimezone
	}
	return u
}

// Goals extracts the nutrition targets used by the daily summary.
func (u User) Goals() Goals {
	return Goals{
		Calories: u.CaloriesGoal,
		ProteinG: u.ProteinGoalG,
		CarbsG:   u.CarbsGoalG,
		FatsG:    u.FatsGoalG,
	}
}

// Goals are the daily targets; nil means "no target".
type Goals struct {
	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatsG    *float64 `json:"fats_g,omitempty"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
