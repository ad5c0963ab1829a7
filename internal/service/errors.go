package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when an operation receives
	// semantically unusable input (empty email, empty todo content, …).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIncorrectEmailOrPassword is the single login failure: an unknown
	// email and a wrong password collapse into it on purpose, so responses
	// never reveal which half of the combination was wrong.
	ErrIncorrectEmailOrPassword = errors.New("the combination of email and password is incorrect")

	// ErrWrongCurrentPassword is returned when a profile update carries a
	// current password that does not verify against the stored hash.
	ErrWrongCurrentPassword = errors.New("current password is wrong")

	// ErrCannotRevokeCurrentSession is returned when a caller targets the
	// session that authenticates the request itself. Logout is the only way
	// to end the current session.
	ErrCannotRevokeCurrentSession = errors.New("cannot revoke your current session")

	// ErrNotAuthenticated is raised by the current-user resolver when a
	// request carries no resolvable session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
