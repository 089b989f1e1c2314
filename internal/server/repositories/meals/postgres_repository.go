package meals

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

const mealColumns = `id, user_id, meal_type, meal_date, meal_time, total_calories,
		 total_protein_g, total_carbs_g, total_fats_g, notes, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, meal *models.MealLog) (*models.MealLog, error) {

	query :=
		`INSERT INTO meals (user_id, meal_type, meal_date, meal_time, total_calories,
		 total_protein_g, total_carbs_g, total_fats_g, notes)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING ` + mealColumns

	rows, err := r.db.QueryContext(ctx, query,
		meal.UserID, meal.MealType, meal.MealDate, nullString(meal.MealTime), meal.TotalCalories,
		meal.TotalProteinG, meal.TotalCarbsG, meal.TotalFatsG, nullString(meal.Notes))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list, err := scanMeals(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("db error: %w", sql.ErrNoRows)
	}
	return &list[0], nil
}

func (r *PostgresRepository) ListByDate(ctx context.Context, userID, date string) ([]models.MealLog, error) {

	query := `SELECT ` + mealColumns + ` FROM meals
		 WHERE user_id = $1 AND meal_date = $2
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanMeals(rows)
}

func scanMeals(rows *sql.Rows) ([]models.MealLog, error) {
	list := []models.MealLog{}
	for rows.Next() {
		var (
			m           models.MealLog
			day         time.Time
			when, notes sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.UserID, &m.MealType, &day, &when, &m.TotalCalories,
			&m.TotalProteinG, &m.TotalCarbsG, &m.TotalFatsG, &notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		m.MealDate = day.Format(common.DateLayout)
		m.MealTime = when.String
		m.Notes = notes.String
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
