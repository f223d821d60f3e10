// Package config loads the id3scan TOML configuration file, applies
// defaults and normalizes and validates the result.
package config
