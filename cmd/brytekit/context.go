package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"brytekit/internal/config"
	"brytekit/internal/logging"
	"brytekit/internal/plan"
)

type globalFlags struct {
	config  string
	execute bool
	dryRun  bool
	format  string
}

type commandContext struct {
	flags *globalFlags
	runID string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags: flags,
		runID: uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// mode resolves the execution mode: flags win over [execution] mode.
func (c *commandContext) mode(cfg *config.Config) (plan.Mode, error) {
	switch {
	case c.flags.execute:
		return plan.ModeExecute, nil
	case c.flags.dryRun:
		return plan.ModePlan, nil
	default:
		return plan.ParseMode(cfg.Execution.Mode)
	}
}

// logger builds the command logger. Callers close the returned closer when
// the command finishes to release the log file.
func (c *commandContext) logger(cfg *config.Config, component string, mode plan.Mode) (*slog.Logger, io.Closer, error) {
	base, closer, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return logging.NewComponentLogger(base, component).With(
		logging.String(logging.FieldRunID, c.runID),
		logging.String(logging.FieldMode, mode.String()),
	), closer, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
