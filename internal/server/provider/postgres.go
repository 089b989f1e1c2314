package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/cryptox"
	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/auth"
	servermodels "github.com/dmitrijs2005/nutritrack/internal/server/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/repomanager"
)

// Options are the settings shared by every backend.
type Options struct {
	Issuer          *auth.Issuer
	RefreshTokenTTL time.Duration
	HashCost        int
}

// PostgresProvider keeps accounts, refresh tokens and logs in PostgreSQL.
type PostgresProvider struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	opts   Options
	logger logging.Logger
	now    func() time.Time
}

func NewPostgresProvider(db *sql.DB, rm repomanager.RepositoryManager, opts Options, logger logging.Logger) *PostgresProvider {
	return &PostgresProvider{db: db, repos: rm, opts: opts, logger: logger, now: time.Now}
}

func (p *PostgresProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	account, err := p.repos.Users(p.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnCompare([]byte(password), p.opts.HashCost)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !cryptox.CheckPassword(account.PasswordHash, []byte(password)) || !account.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	pair, err := p.generateTokenPair(ctx, account.ID, p.db)
	if err != nil {
		return nil, err
	}

	now := p.now().UTC()
	if err := p.repos.Users(p.db).TouchLastLogin(ctx, account.ID, now); err != nil {
		p.logger.Warn(ctx, "last login not recorded", "principal_id", account.ID, "error", err)
	} else {
		account.LastLoginAt = &now
	}

	return &Identity{User: account.User, TokenPair: *pair}, nil
}

// SignUp creates the account and its first refresh token in one transaction.
func (p *PostgresProvider) SignUp(ctx context.Context, sp SignUpParams) (*Identity, error) {
	hash, err := cryptox.HashPassword([]byte(sp.Password), p.opts.HashCost)
	if err != nil {
		return nil, err
	}

	account := &servermodels.Account{
		User: models.User{
			Email:         sp.Email,
			Name:          sp.Name,
			HeightCM:      sp.HeightCM,
			WeightKG:      sp.WeightKG,
			BirthDate:     sp.BirthDate,
			Gender:        sp.Gender,
			GoalType:      sp.GoalType,
			ActivityLevel: sp.ActivityLevel,
			CaloriesGoal:  sp.CaloriesGoal,
		},
		PasswordHash: hash,
	}

	var identity *Identity
	err = dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := p.repos.Users(tx).Create(ctx, account)
		if err != nil {
			return err
		}
		pair, err := p.generateTokenPair(ctx, created.ID, tx)
		if err != nil {
			return err
		}
		identity = &Identity{User: created.User, TokenPair: *pair}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (p *PostgresProvider) SignOut(ctx context.Context, userID, refreshToken string) error {
	repo := p.repos.RefreshTokens(p.db)
	switch {
	case userID != "":
		return repo.DeleteByUser(ctx, userID)
	case refreshToken != "":
		if err := repo.Delete(ctx, refreshToken); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
	}
	return nil
}

// Refresh validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair.
func (p *PostgresProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := p.repos.RefreshTokens(p.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(p.now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// The delete is the claim: a token already taken by another
		// refresh matches no row.
		if err := p.repos.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = p.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

func (p *PostgresProvider) Profile(ctx context.Context, userID string) (*models.User, error) {
	account, err := p.repos.Users(p.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &account.User, nil
}

func (p *PostgresProvider) ListMeals(ctx context.Context, userID, date string) ([]models.MealLog, error) {
	return p.repos.Meals(p.db).ListByDate(ctx, userID, date)
}

func (p *PostgresProvider) AddMeal(ctx context.Context, meal *models.MealLog) (*models.MealLog, error) {
	return p.repos.Meals(p.db).Create(ctx, meal)
}

func (p *PostgresProvider) ListWorkouts(ctx context.Context, userID, date string) ([]models.WorkoutLog, error) {
	return p.repos.Workouts(p.db).ListByDate(ctx, userID, date)
}

func (p *PostgresProvider) AddWorkout(ctx context.Context, w *models.WorkoutLog) (*models.WorkoutLog, error) {
	return p.repos.Workouts(p.db).Create(ctx, w)
}

func (p *PostgresProvider) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := p.opts.Issuer.Issue(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := p.repos.RefreshTokens(tx).Create(ctx, userID, refresh, p.opts.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
