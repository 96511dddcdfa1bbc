package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"buildprint/internal/fingerprint"
)

type inputRow struct {
	Order   int    `json:"order"`
	Role    string `json:"role"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Present bool   `json:"present"`
	Size    int64  `json:"size"`
}

func newInputsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "List the files that feed the fingerprint, in hashing order",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			manifest, err := fingerprint.Resolve(cmd.Context(), cfg.Paths.ThemeRoot)
			if err != nil {
				return err
			}

			rows := manifestRows(manifest)
			if jsonOutput {
				return writeJSON(cmd, rows)
			}

			title := cases.Title(language.English)
			headers := []string{"#", "Role", "Path", "Kind", "Size"}
			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				size := "absent"
				if row.Present {
					size = strconv.FormatInt(row.Size, 10)
				}
				table = append(table, []string{
					strconv.Itoa(row.Order),
					title.String(row.Role),
					row.Path,
					row.Kind,
					size,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, table, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func manifestRows(manifest fingerprint.Manifest) []inputRow {
	rows := make([]inputRow, 0, len(manifest.Entries))
	for i, entry := range manifest.Entries {
		rows = append(rows, inputRow{
			Order:   i + 1,
			Role:    string(entry.Input.Role),
			Path:    entry.Rel,
			Kind:    entry.Input.Kind.String(),
			Present: entry.Present,
			Size:    entry.Size,
		})
	}
	return rows
}
