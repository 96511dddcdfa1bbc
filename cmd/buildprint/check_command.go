package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"buildprint/internal/guardrail"
	"buildprint/internal/logging"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the recorded fingerprint matches the current inputs",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.log(), "check")

			result, err := guardrail.Check(cmd.Context(), cfg.Paths.ThemeRoot)
			if err != nil {
				logger.Debug("guardrail check failed",
					logging.String(logging.FieldEventType, eventType(err)),
					logging.Error(err),
				)
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Recorded", statusInfo, result.Recorded, colorize))
			fmt.Fprintln(out, renderStatusLine("Current", statusInfo, result.Current, colorize))
			if result.Stale() {
				logger.Info("build fingerprint is stale",
					logging.String("recorded", result.Recorded),
					logging.String("current", result.Current),
				)
				fmt.Fprintln(out, renderStatusLine("Guardrail", statusError, "stale", colorize))
				return fmt.Errorf("%w: run 'buildprint' to regenerate %s", errStale, result.Path)
			}
			fmt.Fprintln(out, renderStatusLine("Guardrail", statusOK, "up to date", colorize))
			return nil
		},
	}
}
