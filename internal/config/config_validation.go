package config

import "time"

const (
	defaultHTTPAddress = ":8080"
	defaultGeoTimeout  = 5 * time.Second
)

// applyDefaults fills in values that have sensible fallbacks and are safe to
// run with when no source specified them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Adapter.GeoTimeout == 0 {
		cfg.Adapter.GeoTimeout = defaultGeoTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The cookie signing secret has no fallback: every session-touching route
// depends on it, so its absence is a fatal startup condition.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKeyBase == "" {
		return ErrMissingSecretKeyBase
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
