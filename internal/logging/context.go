package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies a single CLI invocation across its log lines.
	FieldRunID = "run_id"
	// FieldThemeRoot is the theme directory a run operates on.
	FieldThemeRoot = "theme_root"
	// FieldEventType classifies failure lines (missing_input, stale, ...).
	FieldEventType = "event_type"
)

// NewRunID returns a fresh identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun tags logger with a run identifier and the theme root.
func WithRun(logger *slog.Logger, runID, themeRoot string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldRunID, runID), String(FieldThemeRoot, themeRoot))
}
