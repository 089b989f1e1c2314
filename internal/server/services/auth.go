// Package services contains server-side business logic. AuthService turns
// provider outcomes into the caller-facing error taxonomy; RecordService
// validates and stores daily logs and builds the daily summary.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/provider"
)

// AuthResult is what login and registration hand back to the caller.
type AuthResult struct {
	User         models.User
	Token        string
	RefreshToken string
}

// RegisterParams is a sign-up request as received from the client.
type RegisterParams struct {
	Name          string
	Email         string
	Password      string
	GoalType      models.GoalType
	ActivityLevel models.ActivityLevel
	HeightCM      *float64
	WeightKG      *float64
	BirthDate     string
	Gender        string
	CaloriesGoal  *float64
}

type AuthService struct {
	idp    provider.IdentityProvider
	logger logging.Logger
}

func NewAuthService(idp provider.IdentityProvider, logger logging.Logger) *AuthService {
	return &AuthService{idp: idp, logger: logger}
}

// Login verifies credentials. Every failure past input validation surfaces
// as common.ErrInvalidCredentials, whatever the cause.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password are required")
	}

	id, err := s.idp.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Error(ctx, "sign-in failed", "error", err)
		}
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "login accepted", "principal_id", id.User.ID)
	return toResult(id), nil
}

// Register creates an account. A taken email yields common.ErrEmailTaken;
// any other backend failure yields common.ErrAccountCreation.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = normalizeEmail(p.Email)
	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, common.NewValidationError("name, email and password are required")
	}
	if !p.GoalType.Valid() {
		p.GoalType = models.DefaultGoalType
	}
	if !p.ActivityLevel.Valid() {
		p.ActivityLevel = models.DefaultActivityLevel
	}

	id, err := s.idp.SignUp(ctx, provider.SignUpParams{
		Email:         p.Email,
		Password:      p.Password,
		Name:          p.Name,
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		BirthDate:     p.BirthDate,
		Gender:        p.Gender,
		GoalType:      p.GoalType,
		ActivityLevel: p.ActivityLevel,
		CaloriesGoal:  p.CaloriesGoal,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrEmailTaken
		}
		s.logger.Error(ctx, "sign-up failed", "error", err)
		return nil, common.ErrAccountCreation
	}

	s.logger.Info(ctx, "account created", "principal_id", id.User.ID)
	return toResult(id), nil
}

// Logout revokes server-side refresh tokens. It never fails: the client
// has already dropped its session by the time this runs.
func (s *AuthService) Logout(ctx context.Context, principalID, refreshToken string) {
	if principalID == "" && refreshToken == "" {
		return
	}
	if err := s.idp.SignOut(ctx, principalID, refreshToken); err != nil {
		s.logger.Warn(ctx, "refresh token revocation failed", "principal_id", principalID, "error", err)
	}
}

// Refresh exchanges a refresh token for a new pair. Unknown and expired
// tokens both map to common.ErrorUnauthorized.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*provider.TokenPair, error) {
	if refreshToken == "" {
		return nil, common.NewValidationError("refresh token is required")
	}
	pair, err := s.idp.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	return pair, nil
}

func toResult(id *provider.Identity) *AuthResult {
	return &AuthResult{User: id.User, Token: id.AccessToken, RefreshToken: id.RefreshToken}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
