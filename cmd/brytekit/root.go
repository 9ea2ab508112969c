package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "brytekit",
		Short:         "Maintenance tools for the bryte content directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.BoolVar(&flags.execute, "execute", false, "Apply planned operations instead of only printing them")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Only print planned operations, even if the config enables execution")
	pf.StringVar(&flags.format, "format", formatAuto, "Plan output format: auto, plain, or table")
	rootCmd.MarkFlagsMutuallyExclusive("execute", "dry-run")

	rootCmd.AddCommand(newOverridesCommand(ctx))
	rootCmd.AddCommand(newDemosCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
