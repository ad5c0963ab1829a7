package websession

import "errors"

var (
	// ErrMissingSecret is returned by NewManager when no cookie signing
	// secret was configured. Fatal at startup.
	ErrMissingSecret = errors.New("SECRET_KEY_BASE is not set")

	// ErrInvalidCookieToken is returned when a cookie value fails signature
	// or claim verification. Callers treat it as an anonymous request.
	ErrInvalidCookieToken = errors.New("invalid session cookie token")
)
