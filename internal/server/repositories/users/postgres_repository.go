package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	shared "github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint hit.
const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, name, height_cm, weight_kg, birth_date, gender,
		 goal_type, activity_level, calories_goal, protein_goal_g, carbs_goal_g, fats_goal_g,
		 subscription_status, preferred_language, timezone, notifications_enabled,
		 email_verified, is_active, created_at, updated_at, last_login_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO users (email, password_hash, name, height_cm, weight_kg, birth_date, gender,
		 goal_type, activity_level, calories_goal)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING ` + userColumns

	u := &account.User
	row := r.db.QueryRowContext(ctx, query,
		u.Email, account.PasswordHash, u.Name, u.HeightCM, u.WeightKG,
		nullString(u.BirthDate), nullString(u.Gender),
		string(u.GoalType), string(u.ActivityLevel), u.CaloriesGoal)

	created, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE email = $1
		 `
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var (
		a                                      models.Account
		height, weight, cal, prot, carbs, fats sql.NullFloat64
		birth, lastLogin                       sql.NullTime
		gender                                 sql.NullString
		goal, activity                         string
	)

	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &height, &weight, &birth, &gender,
		&goal, &activity, &cal, &prot, &carbs, &fats,
		&a.SubscriptionStatus, &a.PreferredLanguage, &a.Timezone, &a.NotificationsEnabled,
		&a.EmailVerified, &a.IsActive, &a.CreatedAt, &a.UpdatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}

	a.GoalType = shared.GoalType(goal)
	a.ActivityLevel = shared.ActivityLevel(activity)
	a.HeightCM = floatPtr(height)
	a.WeightKG = floatPtr(weight)
	a.CaloriesGoal = floatPtr(cal)
	a.ProteinGoalG = floatPtr(prot)
	a.CarbsGoalG = floatPtr(carbs)
	a.FatsGoalG = floatPtr(fats)
	a.Gender = gender.String
	if birth.Valid {
		a.BirthDate = birth.Time.Format(common.DateLayout)
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLoginAt = &t
	}

	return &a, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return shared.Float(v.Float64)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
