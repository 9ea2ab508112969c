package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brytekit/internal/overrides"
	"brytekit/internal/plan"
	"brytekit/internal/preflight"
)

func newOverridesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "overrides",
		Short: "Promote override maps over their canonical slot files",
		Long: "Scan the content directory for override maps (for example 007_override.bm)\n" +
			"and plan renaming each one over its canonical file (007.bm).\n" +
			"Nothing is changed unless --execute is given.",
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
			ambiguity, err := overrides.ParseAmbiguity(cfg.Overrides.Ambiguity)
			if err != nil {
				return err
			}
			logger, closer, err := ctx.logger(cfg, "overrides", mode)
			if err != nil {
				return err
			}
			defer closer.Close()

			if mode == plan.ModeExecute {
				if res := preflight.CheckDirectoryAccess("Content directory", cfg.Paths.ContentDir); !res.Passed {
					return fmt.Errorf("preflight failed: %s: %s", res.Name, res.Detail)
				}
			}

			resolver := &overrides.Resolver{
				Dir:       cfg.Paths.ContentDir,
				Range:     cfg.SlotRange(),
				Matcher:   overrides.SubstringMatcher,
				Ambiguity: ambiguity,
				Logger:    logger,
			}
			ops, err := resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			runner := &plan.Runner{
				Mode:     mode,
				Executor: resolver.Executor(),
				Logger:   logger,
			}
			_, err = runBatch(cmd, format, runner, ops)
			return err
		},
	}
}
