package service

import (
	"context"

	"github.com/osavchuk/todostack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProfilePatch carries a profile-update request. CurrentPassword must verify
// against the stored hash before anything is applied. NewPassword empty
// means the password stays untouched; non-empty triggers the session
// invalidation cascade.
type ProfilePatch struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// AuthService owns account creation, credential verification and profile
// mutation. Plaintext passwords stop at this layer: everything below sees
// only bcrypt hashes.
type AuthService interface {
	// SignUp creates a new account. Duplicate email surfaces as
	// store.ErrEmailAlreadyRegistered.
	SignUp(ctx context.Context, name, email, password string) (models.User, error)

	// Login verifies the email/password combination. Unknown email and wrong
	// password both yield ErrIncorrectEmailOrPassword.
	Login(ctx context.Context, email, password string) (models.User, error)

	// UpdateProfile verifies patch.CurrentPassword, applies name/email, and,
	// when patch.NewPassword is set, rehashes the password and deletes all
	// of the user's sessions. The caller is responsible for establishing a
	// replacement session.
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (models.User, error)
}

// SessionService owns the session lifecycle and the session-id-to-user
// resolution used by the web session adapter.
type SessionService interface {
	// CreateSession records a new session for user with the captured client
	// metadata.
	CreateSession(ctx context.Context, user models.User, info models.RequestInfo) (models.Session, error)

	// GetUserSessions lists the user's sessions, most recently used first.
	GetUserSessions(ctx context.Context, user models.User) ([]models.Session, error)

	// RevokeSession deletes targetSessionID after confirming it belongs to
	// user. Targets owned by someone else (or absent) yield
	// store.ErrSessionNotFound; targeting currentSessionID yields
	// ErrCannotRevokeCurrentSession.
	RevokeSession(ctx context.Context, user models.User, currentSessionID, targetSessionID string) error

	// DeleteSession removes a session unconditionally (logout path).
	DeleteSession(ctx context.Context, sessionID string) error

	// GetUserBySessionID resolves a session id to its live owning user.
	// Both a dead session and a deleted owner surface as store sentinels.
	GetUserBySessionID(ctx context.Context, sessionID string) (models.User, error)

	// TouchSession refreshes the session's last-used timestamp.
	TouchSession(ctx context.Context, sessionID string) error
}

// TodoService owns ownership-scoped todo CRUD. The authenticated user is an
// argument to every call; the service never resolves identity itself.
type TodoService interface {
	CreateTodo(ctx context.Context, user models.User, content string) (models.Todo, error)
	GetTodos(ctx context.Context, user models.User) ([]models.Todo, error)
	DeleteTodo(ctx context.Context, user models.User, todoID string) error
	DeleteAllTodos(ctx context.Context, user models.User) error
}

// AppInfoService exposes build metadata for the version endpoint.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
