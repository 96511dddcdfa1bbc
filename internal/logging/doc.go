// Package logging assembles structured slog loggers for buildprint.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes attribute helpers so commands tag log lines with the same keys
// (component, run_id, theme_root). Diagnostic logs go to stderr by default so
// they never mix with the human-readable status lines a command prints to
// stdout. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
