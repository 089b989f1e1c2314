package meals

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "user_id", "meal_type", "meal_date", "meal_time", "total_calories",
	"total_protein_g", "total_carbs_g", "total_fats_g", "notes", "created_at", "updated_at",
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
	ts := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	q := `(?s)^SELECT\s+id,.*FROM\s+meals\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+meal_date\s*=\s*\$2\s+ORDER\s+BY\s+created_at$`
	mock.ExpectQuery(q).
		WithArgs("u1", "2025-03-01").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m1", "u1", "lunch", day, "12:30", 650.0, 40.0, 70.0, 20.0, nil, ts, ts).
			AddRow("m2", "u1", "dinner", day, nil, 800.0, 50.0, 60.0, 30.0, "pasta", ts, ts))

	got, err := repo.ListByDate(context.Background(), "u1", "2025-03-01")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-03-01", got[0].MealDate)
	assert.Equal(t, "12:30", got[0].MealTime)
	assert.Equal(t, 650.0, got[0].TotalCalories)
	assert.Equal(t, "", got[1].MealTime)
	assert.Equal(t, "pasta", got[1].Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDate_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+meals`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListByDate(context.Background(), "u1", "2025-03-01")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByDate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+meals`).WillReturnError(errors.New("db err"))

	_, err := repo.ListByDate(context.Background(), "u1", "2025-03-01")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db err`), err.Error())
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ts := time.Now().UTC()

	q := `(?s)^INSERT\s+INTO\s+meals\s*\(user_id,.*VALUES\s*\(\$1,.*\$9\)\s*RETURNING\s+id,.*updated_at$`
	mock.ExpectQuery(q).
		WithArgs("u1", "breakfast", "2025-03-01", nil, 400.0, 20.0, 50.0, 10.0, nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m9", "u1", "breakfast", day, nil, 400.0, 20.0, 50.0, 10.0, nil, ts, ts))

	got, err := repo.Create(context.Background(), &models.MealLog{
		UserID: "u1", MealType: "breakfast", MealDate: "2025-03-01",
		TotalCalories: 400, TotalProteinG: 20, TotalCarbsG: 50, TotalFatsG: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "m9", got.ID)
	assert.Equal(t, "2025-03-01", got.MealDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+meals`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.MealLog{UserID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
