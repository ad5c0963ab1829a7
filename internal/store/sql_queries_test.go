package store

import (
	"strings"
	"testing"

	"github.com/osavchuk/todostack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateUserQuery_WithoutPassword(t *testing.T) {
	update := models.UserUpdate{
		ID:    "user-1",
		Name:  "Jane",
		Email: "jane@example.com",
	}

	query, args, err := buildUpdateUserQuery(update)
	require.NoError(t, err)

	// args checks: name, email, id. No password argument.
	require.Len(t, args, 3)
	assert.Equal(t, "Jane", args[0])
	assert.Equal(t, "jane@example.com", args[1])
	assert.Equal(t, "user-1", args[2])

	q := strings.ToLower(query)

	require.Contains(t, q, "update users")
	require.Contains(t, q, "name")
	require.Contains(t, q, "email")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "where")
	require.Contains(t, q, "returning")

	assert.NotContains(t, q, "password =", "profile-only update must not touch the password column")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$3")
	assert.NotContains(t, query, "?")
}

func Test_buildUpdateUserQuery_WithPassword(t *testing.T) {
	newHash := "new-bcrypt-hash"
	update := models.UserUpdate{
		ID:       "user-1",
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: &newHash,
	}

	query, args, err := buildUpdateUserQuery(update)
	require.NoError(t, err)

	// args checks: name, email, password, id
	require.Len(t, args, 4)
	assert.Equal(t, "Jane", args[0])
	assert.Equal(t, "jane@example.com", args[1])
	assert.Equal(t, newHash, args[2])
	assert.Equal(t, "user-1", args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "password")
	require.Contains(t, query, "$4")
}

func Test_buildUpdateUserQuery_ReturnsFullRow(t *testing.T) {
	query, _, err := buildUpdateUserQuery(models.UserUpdate{ID: "user-1"})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// the RETURNING clause must cover every scanned column
	for _, col := range []string{"id", "name", "email", "password", "created_at", "updated_at"} {
		require.Contains(t, q, col, "query should contain column %q", col)
	}
}

func Test_buildTouchSessionQuery(t *testing.T) {
	query, args, err := buildTouchSessionQuery("session-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "session-1", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "update sessions")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}
