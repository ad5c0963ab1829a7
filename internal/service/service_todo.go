package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/models"
)

// todoService is the concrete implementation of TodoService. It never
// resolves identity itself: the authenticated user arrives as an argument
// and is passed straight into the ownership-scoped repository calls.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// CreateTodo persists a new item for user. Content must be non-empty after
// trimming; otherwise ErrInvalidDataProvided.
func (t *todoService) CreateTodo(ctx context.Context, user models.User, content string) (models.Todo, error) {
	if strings.TrimSpace(content) == "" {
		logger.FromContext(ctx).Error().Str("user_id", user.ID).Msg("empty todo content provided")
		return models.Todo{}, ErrInvalidDataProvided
	}

	createdTodo, err := t.todoRepository.CreateTodo(ctx, models.Todo{
		UserID:  user.ID,
		Content: content,
	})
	if err != nil {
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return createdTodo, nil
}

// GetTodos lists the user's items, newest first.
func (t *todoService) GetTodos(ctx context.Context, user models.User) ([]models.Todo, error) {
	todos, err := t.todoRepository.GetUserTodos(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("todo listing ended with error: %w", err)
	}

	return todos, nil
}

// DeleteTodo removes one item. Items absent or owned by another user both
// surface as store.ErrTodoNotFound.
func (t *todoService) DeleteTodo(ctx context.Context, user models.User, todoID string) error {
	if err := t.todoRepository.DeleteTodo(ctx, user.ID, todoID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Str("todo_id", todoID).Msg("todo deletion failed")
		return fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return nil
}

// DeleteAllTodos removes every item the user owns; silently no-ops when
// there are none.
func (t *todoService) DeleteAllTodos(ctx context.Context, user models.User) error {
	if err := t.todoRepository.DeleteAllTodos(ctx, user.ID); err != nil {
		return fmt.Errorf("todo bulk deletion ended with error: %w", err)
	}

	return nil
}
