package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/conflict"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect schedule conflicts",
	Long: `Reports pairs of pending tasks whose time windows overlap on the same day.

A conflict requires both tasks to have a due date and a complete start/end
window. Completed tasks never conflict.`,
	RunE: runConflicts,
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(_ *cobra.Command, _ []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	conflicts := conflict.Detect(st.Snapshot().Tasks)

	format := outputFormat()
	if format == output.FormatJSON {
		if conflicts == nil {
			conflicts = []conflict.Conflict{}
		}
		return output.JSON(os.Stdout, conflicts)
	}
	if format == output.FormatCompact {
		output.ConflictCompact(os.Stdout, conflicts)
		return nil
	}

	output.ConflictTable(os.Stdout, conflicts)
	return nil
}
