// Package services contains application services for the nutritrack client.
// This file defines the authentication gateway: login, register, logout and
// token refresh, with the resulting session persisted locally.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/client/client"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

// SessionWriter is the part of the session store the gateway mutates.
type SessionWriter interface {
	Save(ctx context.Context, sess *models.Session) error
	Clear(ctx context.Context) error
}

// AuthResult is a successful login or registration.
type AuthResult struct {
	User    models.User
	Session *models.Session
}

// RegisterParams is the sign-up form. GoalType and ActivityLevel are
// optional and default server-side.
type RegisterParams struct {
	Name          string
	Email         string
	Password      string
	GoalType      models.GoalType
	ActivityLevel models.ActivityLevel
}

// AuthGateway signs the principal in and out.
//
// Contract:
//   - Login: any failure past input validation is common.ErrInvalidCredentials.
//   - Register: duplicate email is common.ErrEmailTaken, other failures
//     common.ErrAccountCreation.
//   - Logout: clears the local session first; server revocation is best-effort.
//   - Refresh: trades the refresh token for a new pair and re-saves the session.
//
// Network failures keep the user-facing message while errors.Is(err,
// common.ErrNetwork) holds.
type AuthGateway struct {
	api      client.Client
	sessions SessionWriter
	logger   logging.Logger
	now      func() time.Time
}

func NewAuthGateway(api client.Client, sessions SessionWriter, logger logging.Logger) *AuthGateway {
	return &AuthGateway{api: api, sessions: sessions, logger: logger, now: time.Now}
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password are required")
	}

	res, err := g.api.Login(ctx, email, password)
	if err != nil {
		g.logger.Debug(ctx, "login rejected", "error", err)
		if errors.Is(err, common.ErrNetwork) {
			return nil, common.ErrInvalidCredentials.WithCause(common.ErrNetwork)
		}
		return nil, common.ErrInvalidCredentials
	}
	return g.establish(ctx, res)
}

func (g *AuthGateway) Register(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, common.NewValidationError("name, email and password are required")
	}
	if !p.GoalType.Valid() {
		p.GoalType = models.DefaultGoalType
	}
	if !p.ActivityLevel.Valid() {
		p.ActivityLevel = models.DefaultActivityLevel
	}

	res, err := g.api.Register(ctx, client.RegisterRequest{
		Name:          p.Name,
		Email:         p.Email,
		Password:      p.Password,
		GoalType:      string(p.GoalType),
		ActivityLevel: string(p.ActivityLevel),
	})
	if err != nil {
		g.logger.Debug(ctx, "registration rejected", "error", err)
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			return nil, common.ErrEmailTaken
		case errors.Is(err, common.ErrValidation):
			return nil, err
		case errors.Is(err, common.ErrNetwork):
			return nil, common.ErrAccountCreation.WithCause(common.ErrNetwork)
		}
		return nil, common.ErrAccountCreation
	}
	return g.establish(ctx, res)
}

// establish turns a server auth response into the stored session.
func (g *AuthGateway) establish(ctx context.Context, res *client.AuthResult) (*AuthResult, error) {
	if res.Token == "" || res.RefreshToken == "" {
		return nil, fmt.Errorf("%w: server returned an incomplete token pair", common.ErrUnexpected)
	}

	profile := res.User
	sess := &models.Session{
		AccessToken:  res.Token,
		RefreshToken: res.RefreshToken,
		PrincipalID:  res.User.ID,
		IssuedAt:     g.now().UTC().Truncate(time.Second),
		Profile:      &profile,
	}
	if err := g.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: save session: %v", common.ErrUnexpected, err)
	}

	g.logger.Info(ctx, "session established", "principal_id", sess.PrincipalID)
	return &AuthResult{User: res.User, Session: sess}, nil
}

// Logout drops the local session and then asks the server to revoke sess's
// refresh token. Only a local storage failure is reported.
func (g *AuthGateway) Logout(ctx context.Context, sess *models.Session) error {
	if err := g.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear session: %v", common.ErrUnexpected, err)
	}
	if sess == nil {
		return nil
	}

	if err := g.api.Logout(ctx, sess.AccessToken, sess.RefreshToken); err != nil {
		g.logger.Warn(ctx, "remote sign-out failed", "principal_id", sess.PrincipalID, "error", err)
	}
	return nil
}

// Refresh rotates sess's tokens. A refresh token the server no longer
// accepts ends the session: the local copy is cleared and
// common.ErrorUnauthorized returned.
func (g *AuthGateway) Refresh(ctx context.Context, sess *models.Session) (*models.Session, error) {
	if !sess.Valid() {
		return nil, common.ErrNoSession
	}

	pair, err := g.api.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNetwork) {
			return nil, common.ErrNetwork
		}
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrTokenExpired) {
			if cerr := g.sessions.Clear(ctx); cerr != nil {
				g.logger.Warn(ctx, "clearing rejected session failed", "error", cerr)
			}
			return nil, common.ErrorUnauthorized
		}
		g.logger.Error(ctx, "token refresh failed", "error", err)
		return nil, common.ErrUnexpected
	}

	next := *sess
	next.AccessToken = pair.Token
	next.RefreshToken = pair.RefreshToken
	next.IssuedAt = g.now().UTC().Truncate(time.Second)
	if err := g.sessions.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("%w: save session: %v", common.ErrUnexpected, err)
	}
	return &next, nil
}
