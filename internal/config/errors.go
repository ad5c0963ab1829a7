package config

import "errors"

var (
	// ErrMissingSecretKeyBase is returned when SECRET_KEY_BASE is absent from
	// every configuration source. The server must not start without it.
	ErrMissingSecretKeyBase = errors.New("SECRET_KEY_BASE is not set")

	// ErrInvalidStorageConfigs is returned when no database DSN was provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: empty DSN")
)
