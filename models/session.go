package models

import "time"

// Session is the server-side record of one authenticated browser context.
// The client holds only the session ID, wrapped in a signed cookie; deleting
// the row revokes the session immediately.
type Session struct {
	// ID is the unique identifier of the session, assigned by the database.
	// Its signed form is the only thing ever placed into the cookie.
	ID string `json:"id"`

	// UserID is the owning user. Sessions are cascade-deleted with the user.
	UserID string `json:"user_id"`

	// IPAddress is the best-effort client IP captured at login time.
	IPAddress *string `json:"ip_address,omitempty"`

	// UserAgent is the client's User-Agent header captured at login time.
	UserAgent *string `json:"user_agent,omitempty"`

	// Location is a coarse, best-effort geolocation string ("City, Country")
	// resolved from proxy headers or an external IP lookup.
	Location *string `json:"location,omitempty"`

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed whenever the session is used, which drives the
	// most-recently-active ordering in the sessions listing.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
