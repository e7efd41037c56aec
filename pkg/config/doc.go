// Package config handles configuration management for brewbump.
// It layers embedded TOML defaults, an optional project file,
// BREWBUMP_ environment variables and command line overrides using koanf.
package config
