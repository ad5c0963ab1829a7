package models

import "time"

// User represents an account entity used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier, stored case-sensitive.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never exposed via JSON and never leaves the server process.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a profile mutation applied to an existing user.
// Name and Email are applied unconditionally; Password is applied only
// when non-nil and must already be a bcrypt hash.
type UserUpdate struct {
	ID       string
	Name     string
	Email    string
	Password *string
}
