package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Long:  `Shows totals, completion rate, overdue counts, and the category breakdown.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	stats := view.Summarize(st.Snapshot().Tasks, time.Now())

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, stats)
	}
	if format == output.FormatCompact {
		output.StatsCompact(os.Stdout, stats)
		return nil
	}

	output.StatsTable(os.Stdout, stats)
	return nil
}
