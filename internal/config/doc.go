// Package config loads, normalizes, and validates subrip configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates the enumerated settings so
// commands receive canonical values with clear errors.
package config
