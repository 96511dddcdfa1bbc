// Package sentinel persists and reads the build fingerprint record.
//
// The record lives at static/theme_a/css/.build_fingerprint under the theme
// root and holds the fingerprint followed by a single newline. Each Persist
// fully replaces the previous record; there is no history.
package sentinel
