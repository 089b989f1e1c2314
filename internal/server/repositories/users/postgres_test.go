package users

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	shared "github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var columns = []string{
	"id", "email", "password_hash", "name", "height_cm", "weight_kg", "birth_date", "gender",
	"goal_type", "activity_level", "calories_goal", "protein_goal_g", "carbs_goal_g", "fats_goal_g",
	"subscription_status", "preferred_language", "timezone", "notifications_enabled",
	"email_verified", "is_active", "created_at", "updated_at", "last_login_at",
}

var created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func userRow(id, email string) []driver.Value {
	return []driver.Value{
		id, email, []byte("hash"), "Alice", 165.0, nil, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), nil,
		"maintain", "active", 1800.0, 120.0, nil, nil,
		"free", "pt-BR", "America/Sao_Paulo", true,
		false, true, created, created, nil,
	}
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*password_hash,\s*name,.*VALUES\s*\(\$1,.*\$10\)\s*RETURNING\s+id,.*last_login_at$`

func newAccount() *models.Account {
	return &models.Account{
		User: shared.User{
			Email:         "alice@example.com",
			Name:          "Alice",
			HeightCM:      shared.Float(165),
			GoalType:      shared.GoalMaintain,
			ActivityLevel: shared.ActivityActive,
			BirthDate:     "1990-05-17",
		},
		PasswordHash: []byte("hash"),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice@example.com", []byte("hash"), "Alice", 165.0, nil, "1990-05-17", nil, "maintain", "active", nil).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(userRow("u-1", "alice@example.com")...))

	got, err := repo.Create(context.Background(), newAccount())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.BirthDate != "1990-05-17" || got.WeightKG != nil || *got.CaloriesGoal != 1800 {
		t.Fatalf("unexpected nullable mapping: %+v", got.User)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	_, err := repo.Create(context.Background(), newAccount())
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newAccount())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("generic failure must not look like a duplicate")
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(userRow("u-1", "alice@example.com")...))

	got, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if got.ID != "u-1" || string(got.PasswordHash) != "hash" || got.GoalType != shared.GoalMaintain {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestTouchLastLogin(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+last_login_at\s*=\s*\$1,\s*updated_at\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2$`
	at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(q).
		WithArgs(at, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), "u-1", at); err != nil {
		t.Fatalf("TouchLastLogin error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
