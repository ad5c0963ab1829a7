package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
)

func newTestTodoRepo(t *testing.T) (*todoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &todoRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func todoColumns() []string {
	return []string{"id", "user_id", "content", "created_at"}
}

func TestCreateTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(todoColumns()).
		AddRow("todo-1", "user-1", "buy milk", time.Now())

	mock.ExpectQuery("INSERT INTO todos").
		WithArgs("user-1", "buy milk").
		WillReturnRows(rows)

	created, err := repo.CreateTodo(context.Background(), models.Todo{UserID: "user-1", Content: "buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "todo-1" {
		t.Errorf("expected ID=todo-1, got %s", created.ID)
	}
}

func TestGetUserTodos_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(todoColumns()).
		AddRow("todo-2", "user-1", "newer", now).
		AddRow("todo-1", "user-1", "older", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs("user-1").
		WillReturnRows(rows)

	todos, err := repo.GetUserTodos(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Content != "newer" {
		t.Errorf("expected newest todo first, got %s", todos[0].Content)
	}
}

func TestGetUserTodos_Empty(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(todoColumns()))

	todos, err := repo.GetUserTodos(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected no todos, got %d", len(todos))
	}
}

func TestDeleteTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	// statement args are (todo id, owner id)
	mock.ExpectExec("DELETE FROM todos").
		WithArgs("todo-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTodo(context.Background(), "user-1", "todo-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Zero affected rows covers both an absent id and an id owned by another
// user; the caller cannot tell them apart.
func TestDeleteTodo_NotOwnedOrAbsent(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("someone-elses-todo", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTodo(context.Background(), "user-1", "someone-elses-todo")
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestDeleteTodo_ExecError(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteTodo(context.Background(), "user-1", "todo-1")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteAllTodos(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.DeleteAllTodos(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
