package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSlots(); err != nil {
		return err
	}
	if err := c.validateGame(); err != nil {
		return err
	}
	if err := c.validatePolicies(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSlots() error {
	if err := c.SlotRange().Validate(); err != nil {
		return fmt.Errorf("slots: %w", err)
	}
	return nil
}

func (c *Config) validateGame() error {
	if c.Game.WindowWidth <= 0 {
		return errors.New("game.window_width must be positive")
	}
	if c.Game.WindowHeight <= 0 {
		return errors.New("game.window_height must be positive")
	}
	if c.Game.Speed <= 0 {
		return errors.New("game.speed must be positive")
	}
	if c.Game.TimeoutSeconds < 0 {
		return errors.New("game.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validatePolicies() error {
	switch c.Overrides.Ambiguity {
	case AmbiguityLast, AmbiguityError:
	default:
		return fmt.Errorf("overrides.ambiguity must be %q or %q, got %q", AmbiguityLast, AmbiguityError, c.Overrides.Ambiguity)
	}
	switch c.Demos.OnFailure {
	case FailureStop, FailureSkip:
	default:
		return fmt.Errorf("demos.on_failure must be %q or %q, got %q", FailureStop, FailureSkip, c.Demos.OnFailure)
	}
	switch c.Execution.Mode {
	case ModePlan, ModeExecute:
	default:
		return fmt.Errorf("execution.mode must be %q or %q, got %q", ModePlan, ModeExecute, c.Execution.Mode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
