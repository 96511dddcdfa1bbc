package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	root := strings.TrimSpace(c.Paths.ThemeRoot)
	if root == "" {
		root = "."
	}
	expanded, err := expandPath(root)
	if err != nil {
		return fmt.Errorf("paths.theme_root: %w", err)
	}
	c.Paths.ThemeRoot = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// OverrideThemeRoot replaces the configured theme root, applying the same
// expansion rules as the config file.
func (c *Config) OverrideThemeRoot(root string) error {
	c.Paths.ThemeRoot = root
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.validatePaths()
}
