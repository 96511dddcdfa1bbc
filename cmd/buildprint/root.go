package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var rootFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &rootFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "buildprint",
		Short: "Compute and record the theme build fingerprint",
		Long: "buildprint hashes the theme's Tailwind build inputs in a fixed order and writes\n" +
			"the digest to static/theme_a/css/.build_fingerprint so stale compiled CSS can be detected.",
		Args:          noArgs,
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
			return runGenerate(cmd, ctx)
		},
	}
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "Theme root directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newInputsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
