package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"buildprint/internal/config"
	"buildprint/internal/logging"
)

type commandContext struct {
	configFlag   *string
	rootFlag     *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	runID      string
}

func newCommandContext(configFlag, rootFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		rootFlag:     rootFlag,
		logLevelFlag: logLevelFlag,
		runID:        logging.NewRunID(),
	}
}

// ensureConfig loads configuration once and applies command-line overrides.
// --root wins over BUILDPRINT_THEME_ROOT, which wins over the config file.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if root := flagValue(c.rootFlag); root != "" {
			if err := cfg.OverrideThemeRoot(root); err != nil {
				c.configErr = err
				return
			}
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if err := cfg.Validate(); err != nil {
				c.configErr = usageError{err: err}
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the run-scoped logger. It falls back to a no-op logger when
// configuration failed to load so error paths can still log.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logging.WithRun(logger, c.runID, cfg.Paths.ThemeRoot)
	})
	return c.logger
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
