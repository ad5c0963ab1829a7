package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/osavchuk/todostack/models"
)

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, created_at, updated_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (user_id, ip_address, user_agent, location)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, ip_address, user_agent, location, created_at, updated_at;`

	getUserSessions = `SELECT id, user_id, ip_address, user_agent, location, created_at, updated_at
    FROM sessions
    WHERE user_id = $1
    ORDER BY updated_at DESC;`

	getSessionByID = `SELECT id, user_id, ip_address, user_agent, location, created_at, updated_at
    FROM sessions
    WHERE id = $1;`

	deleteSession = `DELETE FROM sessions WHERE id = $1;`

	deleteAllSessions = `DELETE FROM sessions WHERE user_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE updated_at < $1;`

	createTodo = `INSERT INTO todos (user_id, content)
    VALUES ($1, $2)
    RETURNING id, user_id, content, created_at;`

	getUserTodos = `SELECT id, user_id, content, created_at
    FROM todos
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deleteTodo = `DELETE FROM todos WHERE id = $1 AND user_id = $2;`

	deleteAllTodos = `DELETE FROM todos WHERE user_id = $1;`
)

// psql is the shared squirrel statement builder configured for Postgres
// ($N placeholders). Used for the statements whose SET clause is dynamic.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds the profile UPDATE. Name and email are always
// set; the password column is touched only when the patch carries a new hash,
// so a profile-only update leaves the stored hash byte-identical.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").
		Set("name", update.Name).
		Set("email", update.Email).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, name, email, password, created_at, updated_at")

	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	return builder.ToSql()
}

// buildTouchSessionQuery builds the updated_at refresh applied when a session
// is used to authenticate a request.
func buildTouchSessionQuery(sessionID string) (string, []any, error) {
	return psql.Update("sessions").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}
