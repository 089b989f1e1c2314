package workouts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/dbx"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

const workoutColumns = `id, user_id, workout_type, workout_name, workout_date, duration_minutes,
		 calories_burned, intensity, notes, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, w *models.WorkoutLog) (*models.WorkoutLog, error) {

	query :=
		`INSERT INTO workouts (user_id, workout_type, workout_name, workout_date, duration_minutes,
		 calories_burned, intensity, notes)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING ` + workoutColumns

	rows, err := r.db.QueryContext(ctx, query,
		w.UserID, w.WorkoutType, nullString(w.WorkoutName), w.WorkoutDate, w.DurationMinutes,
		w.CaloriesBurned, nullString(w.Intensity), nullString(w.Notes))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("db error: %w", sql.ErrNoRows)
	}
	return &list[0], nil
}

func (r *PostgresRepository) ListByDate(ctx context.Context, userID, date string) ([]models.WorkoutLog, error) {

	query := `SELECT ` + workoutColumns + ` FROM workouts
		 WHERE user_id = $1 AND workout_date = $2
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func scanWorkouts(rows *sql.Rows) ([]models.WorkoutLog, error) {
	list := []models.WorkoutLog{}
	for rows.Next() {
		var (
			w                      models.WorkoutLog
			day                    time.Time
			name, intensity, notes sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.WorkoutType, &name, &day, &w.DurationMinutes,
			&w.CaloriesBurned, &intensity, &notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		w.WorkoutDate = day.Format(common.DateLayout)
		w.WorkoutName = name.String
		w.Intensity = intensity.String
		w.Notes = notes.String
		list = append(list, w)
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
