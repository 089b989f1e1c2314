package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nutritrack/internal/client/services"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the sign-up form and creates the account. The new
// session is stored by the gateway.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	goal, err := getSimpleText(a.reader, "Goal (lose_weight, gain_weight, maintain, gain_muscle) [lose_weight]", a.out)
	if err != nil {
		return err
	}
	activity, err := getSimpleText(a.reader, "Activity level (sedentary, light, moderate, active, very_active) [moderate]", a.out)
	if err != nil {
		return err
	}

	res, err := a.gateway.Register(ctx, services.RegisterParams{
		Name:          name,
		Email:         email,
		Password:      string(password),
		GoalType:      models.GoalType(goal),
		ActivityLevel: models.ActivityLevel(activity),
	})
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Name)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.gateway.Login(ctx, email, string(password))
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", res.User.Email)
	return nil
}

// Logout drops the stored session. It reports success even when the
// server could not be told.
func (a *App) Logout(ctx context.Context) error {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reading session before logout failed", "error", err)
	}
	if err := a.gateway.Logout(ctx, sess); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
