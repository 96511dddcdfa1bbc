// Package config loads, normalizes, and validates buildprint configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and applies BUILDPRINT_* environment overrides. The theme root
// defaults to the current working directory so the tool can run from a theme
// checkout without any configuration at all.
package config
