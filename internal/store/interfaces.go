package store

import (
	"context"
	"time"

	"github.com/osavchuk/todostack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary for user accounts. Password
// values cross this boundary only as bcrypt hashes; plaintext never reaches
// the store layer.
type UserRepository interface {
	// CreateUser persists user and returns the stored row. A unique-constraint
	// violation on email yields ErrEmailAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email (case-sensitive
	// match, as stored) or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUser applies the patch and returns the updated row. Name and
	// Email are set unconditionally; Password only when non-nil.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// SessionRepository is the persistence boundary for login sessions.
type SessionRepository interface {
	// CreateSession persists a session row for session.UserID with the
	// captured client metadata and returns the stored row.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// GetUserSessions returns all sessions owned by userID ordered by
	// most-recently-updated first.
	GetUserSessions(ctx context.Context, userID string) ([]models.Session, error)

	// GetSessionByID returns the session with the given id or ErrSessionNotFound.
	GetSessionByID(ctx context.Context, id string) (models.Session, error)

	// DeleteSession removes the session row. Deleting an absent id is not an
	// error: logout and revocation are idempotent at this level.
	DeleteSession(ctx context.Context, id string) error

	// DeleteAllSessions removes every session owned by userID.
	DeleteAllSessions(ctx context.Context, userID string) error

	// TouchSession refreshes the session's updated_at to now.
	TouchSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes sessions idle since before cutoff and
	// reports how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// TodoRepository is the persistence boundary for per-user todo items.
// Every mutation is ownership-scoped in its WHERE clause.
type TodoRepository interface {
	// CreateTodo persists a todo for todo.UserID and returns the stored row.
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// GetUserTodos returns all todos owned by userID, newest first.
	GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error)

	// DeleteTodo removes the todo with the given id if it belongs to userID;
	// otherwise ErrTodoNotFound.
	DeleteTodo(ctx context.Context, userID, todoID string) error

	// DeleteAllTodos removes every todo owned by userID. Removing zero rows
	// is not an error.
	DeleteAllTodos(ctx context.Context, userID string) error
}
