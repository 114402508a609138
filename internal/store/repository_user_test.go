package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/models"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	d, err := dialectFor(driver)
	if err != nil {
		t.Fatalf("unexpected dialect error: %v", err)
	}

	return newDB(sqlx.NewDb(mockDB, "sqlmock"), d, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, config.DriverMySQL)
	return NewUserRepository(db, logger.Nop()), mock
}

const (
	insertUserSQL = "INSERT INTO users (name,email,password) VALUES (?,?,?)"
	findUserSQL   = "SELECT id, name, email, password FROM users WHERE email = ? LIMIT 1"
)

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "Alice", Email: "a@x.io", Password: "hash"}

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.io' for key 'email'"})

	err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	dbErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(dbErr)

	err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("generic failure must not be classified as duplicate")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(7, "Alice", "a@x.io", "hash")
	mock.ExpectQuery(regexp.QuoteMeta(findUserSQL)).
		WithArgs("a@x.io").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.User{ID: 7, Name: "Alice", Email: "a@x.io", Password: "hash"}
	if user != want {
		t.Errorf("expected %+v, got %+v", want, user)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserSQL)).
		WithArgs("ghost@x.io").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@x.io")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserSQL)).
		WithArgs("a@x.io").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if errors.Is(err, ErrNoUserWasFound) {
		t.Errorf("query failure must not look like a missing user")
	}
}
