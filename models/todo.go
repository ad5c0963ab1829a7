package models

import "time"

// Todo is a single free-text todo item owned by exactly one user.
// Todos are only ever visible to and mutable by their owner.
type Todo struct {
	// ID is the unique identifier of the todo, assigned by the database.
	ID string `json:"id"`

	// UserID is the owning user. Todos are cascade-deleted with the user.
	UserID string `json:"user_id"`

	// Content is the free-text body of the item. Never empty.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
