package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brytekit/internal/config"
	"brytekit/internal/demos"
	"brytekit/internal/game"
	"brytekit/internal/logging"
	"brytekit/internal/plan"
	"brytekit/internal/preflight"
)

func newDemosCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "Regenerate recorded demos by replaying them in the game",
		Long: "For every slot, run the game in playback + record mode and promote the\n" +
			"fresh recording (007_new.bd) over the original demo (007.bd).\n" +
			"Nothing is run unless --execute is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := ctx.mode(cfg)
			if err != nil {
				return err
			}
			format, err := parseFormat(ctx.flags.format)
			if err != nil {
				return err
			}
			logger, closer, err := ctx.logger(cfg, "demos", mode)
			if err != nil {
				return err
			}
			defer closer.Close()

			if mode == plan.ModeExecute {
				if res, failed := preflight.FirstFailure(preflight.RunAll(cfg)); failed {
					return fmt.Errorf("preflight failed: %s: %s", res.Name, res.Detail)
				}
			}

			driver := &demos.Driver{
				ContentDir: cfg.Paths.ContentDir,
				Range:      cfg.SlotRange(),
				Settings: game.Settings{
					Binary:       cfg.Game.Binary,
					WindowWidth:  cfg.Game.WindowWidth,
					WindowHeight: cfg.Game.WindowHeight,
					Speed:        cfg.Game.Speed,
					Timeout:      cfg.GameTimeout(),
				},
				// Game output goes to stderr so stdout carries only commands.
				Player: game.ExecPlayer{
					Stdout: cmd.ErrOrStderr(),
					Stderr: cmd.ErrOrStderr(),
					Logger: logger,
				},
				Logger: logger,
			}

			runner := &plan.Runner{
				Mode:            mode,
				Executor:        driver.Executor(),
				Logger:          logger,
				ContinueOnError: cfg.Demos.OnFailure == config.FailureSkip,
			}
			summary, err := runBatch(cmd, format, runner, driver.Plan())
			if err != nil && len(summary.Failures) > 0 {
				logger.Error("demo regeneration finished with failures",
					logging.Int("failed_slots", len(summary.FailedSlots())),
					logging.Alert("batch_failed"),
				)
			}
			return err
		},
	}
}
