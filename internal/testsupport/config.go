package testsupport

import (
	"path/filepath"
	"testing"

	"buildprint/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a normalized config rooted at a fresh theme tree (see
// NewTheme) with logs written to a temp file.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.ThemeRoot = NewTheme(t)
	cfg.Logging.File = filepath.Join(t.TempDir(), "buildprint.log")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLogLevel overrides the log level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

// WithLogFormat overrides the log format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Format = format
	}
}
