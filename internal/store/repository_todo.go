package store

import (
	"context"
	"fmt"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// Every statement scopes its WHERE clause to the owning user, so one user's
// rows are unreachable from another user's requests.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo persists a todo row and returns it with server-assigned fields.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTodo, todo.UserID, todo.Content)

	if err := row.Scan(&todo.ID, &todo.UserID, &todo.Content, &todo.CreatedAt); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error: scanning error")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todo, nil
}

// GetUserTodos returns every todo owned by userID, newest first.
func (r *todoRepository) GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserTodos, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetUserTodos").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Content, &t.CreatedAt); err != nil {
			log.Err(err).Str("func", "*todoRepository.GetUserTodos").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// DeleteTodo removes the todo with the given id when it belongs to userID.
// A zero-row result means the id is absent or owned by someone else; both
// surface as [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTodo, todoID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// DeleteAllTodos removes every todo owned by userID. Removing zero rows is a
// silent no-op.
func (r *todoRepository) DeleteAllTodos(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteAllTodos, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*todoRepository.DeleteAllTodos").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
