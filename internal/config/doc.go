// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo (first non-zero value wins in source order
// env → flags → JSON), defaults are applied, and the result is validated
// before the application starts.
package config
