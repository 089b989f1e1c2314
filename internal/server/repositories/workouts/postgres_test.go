package workouts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "user_id", "workout_type", "workout_name", "workout_date", "duration_minutes",
	"calories_burned", "intensity", "notes", "created_at", "updated_at",
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestListByDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ts := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	q := `(?s)^SELECT\s+id,.*FROM\s+workouts\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+workout_date\s*=\s*\$2\s+ORDER\s+BY\s+created_at$`
	mock.ExpectQuery(q).
		WithArgs("u1", "2025-03-01").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("w1", "u1", "cardio", "run", day, int64(30), 300.0, "high", nil, ts, ts))

	got, err := repo.ListByDate(context.Background(), "u1", "2025-03-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-01", got[0].WorkoutDate)
	assert.Equal(t, 30, got[0].DurationMinutes)
	assert.Equal(t, 300.0, got[0].CaloriesBurned)
	assert.Equal(t, "run", got[0].WorkoutName)
	assert.Equal(t, "", got[0].Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+workouts`).WillReturnError(errors.New("db err"))

	_, err := repo.ListByDate(context.Background(), "u1", "2025-03-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ts := time.Now().UTC()

	q := `(?s)^INSERT\s+INTO\s+workouts\s*\(user_id,.*VALUES\s*\(\$1,.*\$8\)\s*RETURNING\s+id,.*updated_at$`
	mock.ExpectQuery(q).
		WithArgs("u1", "strength", nil, "2025-03-01", int64(45), 250.0, "moderate", nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("w2", "u1", "strength", nil, day, int64(45), 250.0, "moderate", nil, ts, ts))

	got, err := repo.Create(context.Background(), &models.WorkoutLog{
		UserID: "u1", WorkoutType: "strength", WorkoutDate: "2025-03-01",
		DurationMinutes: 45, CaloriesBurned: 250, Intensity: "moderate",
	})
	require.NoError(t, err)
	assert.Equal(t, "w2", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
