package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"buildprint/internal/fingerprint"
	"buildprint/internal/logging"
	"buildprint/internal/sentinel"
)

func runGenerate(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(ctx.log(), "generate")
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	root := cfg.Paths.ThemeRoot

	fmt.Fprintf(out, "Computing fingerprint for theme at %s\n", root)

	start := time.Now()
	fp, err := fingerprint.Compute(cmd.Context(), root)
	if err != nil {
		logger.Debug("fingerprint computation failed",
			logging.String(logging.FieldEventType, eventType(err)),
			logging.Error(err),
		)
		return err
	}
	logger.Info("fingerprint computed",
		logging.String("fingerprint", fp),
		logging.Duration("elapsed", time.Since(start)),
	)

	path, err := sentinel.Persist(cmd.Context(), root, fp)
	if err != nil {
		logger.Debug("fingerprint persist failed", logging.Error(err))
		return fmt.Errorf("persist fingerprint: %w", err)
	}
	logger.Info("fingerprint record written", logging.String("path", path))

	fmt.Fprintln(out, renderMark(statusOK, "Fingerprint written to "+path, colorize))
	fmt.Fprintf(out, "%sHash: %s\n", statusIndent, fp)
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderMark(statusOK, "Build fingerprint generated successfully", colorize))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "%s1. Commit the updated %s file\n", statusIndent, sentinel.RelPath)
	fmt.Fprintf(out, "%s2. Run 'buildprint check' to verify the guardrail passes\n", statusIndent)
	return nil
}
