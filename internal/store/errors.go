package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyRegistered is returned when creating a user fails on the
	// "users.email" unique constraint. The constraint is the sole source of
	// truth for duplicates; there is deliberately no pre-insert lookup, so
	// concurrent signups with the same email cannot race past a check.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session lookup or deletion
	// targets a session id that does not exist (or, for ownership-scoped
	// lookups, does not belong to the given user).
	ErrSessionNotFound = errors.New("session not found")

	// ErrTodoNotFound is returned when a todo mutation targets an id that
	// does not exist or is owned by a different user. The two cases are not
	// distinguished: ownership scoping happens inside the WHERE clause.
	ErrTodoNotFound = errors.New("todo not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
