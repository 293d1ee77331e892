package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkravets/libshelf/internal/common"
	"github.com/dkravets/libshelf/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{"id", "email", "username", "first_name", "last_name", "password_hash", "date_joined", "is_active"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*username,\s*first_name,\s*last_name,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*date_joined,\s*is_active\s*$`

	joined := time.Now()
	rows := sqlmock.NewRows([]string{"id", "date_joined", "is_active"}).AddRow("u-42", joined, true)
	mock.ExpectQuery(q).
		WithArgs("ada@example.com", "ada", "Ada", "Lovelace", "hash").
		WillReturnRows(rows)

	u := &models.User{Email: "ada@example.com", Username: "ada", FirstName: "Ada", LastName: "Lovelace", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-42" || !got.IsActive || !got.DateJoined.Equal(joined) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "ada@example.com"})
	if !errors.Is(err, common.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "ada@example.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*email,\s*username,\s*first_name,\s*last_name,\s*password_hash,\s*date_joined,\s*is_active\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "ada@example.com", "ada", "Ada", "Lovelace", "hash", time.Now(), true)
	mock.ExpectQuery(q).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Username != "ada" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM\s+users\s+WHERE\s+email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "ada@example.com", "ada", "Ada", "Lovelace", "hash", time.Now(), true)
	mock.ExpectQuery(`(?s)SELECT .* FROM\s+users\s+WHERE\s+id`).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}
