// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/osavchuk/todostack/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the session middleware stores the
// authenticated user for the duration of a request. Absent for anonymous
// requests.
var CurrentUserCtxKey = contextKey("currentUser")

// SessionIDCtxKey is the key under which the session middleware stores the
// identifier of the session that authenticated the current request.
var SessionIDCtxKey = contextKey("sessionID")

// GetCurrentUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: a user was resolved for this request
//   - ok == false: the request is anonymous
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}

// GetSessionIDFromContext retrieves the current session identifier from the
// context. The second return value is false for anonymous requests.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
