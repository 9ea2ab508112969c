package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGame()
	c.normalizePolicies()
	c.normalizeLogging()
	return nil
}

// normalizePaths keeps a relative content dir relative so planned commands
// read "content/007.bm" exactly as the game's own tooling prints them.
func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ContentDir) == "" {
		c.Paths.ContentDir = defaultContentDir
	}
	if c.Paths.ContentDir, err = expandHome(c.Paths.ContentDir); err != nil {
		return fmt.Errorf("paths.content_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeGame() {
	c.Game.Binary = strings.TrimSpace(c.Game.Binary)
	if c.Game.Binary == "" {
		c.Game.Binary = defaultGameBinary
	}
}

func (c *Config) normalizePolicies() {
	c.Overrides.Ambiguity = lowerOr(c.Overrides.Ambiguity, defaultAmbiguity)
	c.Demos.OnFailure = lowerOr(c.Demos.OnFailure, defaultFailurePolicy)

	switch mode := lowerOr(c.Execution.Mode, defaultExecutionMode); mode {
	case "dry-run", "dryrun":
		c.Execution.Mode = ModePlan
	case "live":
		c.Execution.Mode = ModeExecute
	default:
		c.Execution.Mode = mode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = lowerOr(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = lowerOr(c.Logging.Level, defaultLogLevel)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
