package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
	"github.com/twiced-technology-gmbh/taskwatch/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long:    `Lists tasks in their explicit order with optional filtering.`,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringP("filter", "f", "all",
		"status filter ("+strings.Join(view.ValidStatusFilters(), ", ")+")")
	listCmd.Flags().StringP("category", "c", "", "filter by category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	filterName, _ := cmd.Flags().GetString("filter")
	filter, ok := view.ParseStatusFilter(filterName)
	if !ok {
		return clierr.Newf(clierr.InvalidFilter, "invalid --filter %q; valid: %s",
			filterName, strings.Join(view.ValidStatusFilters(), ", "))
	}

	opts := view.Options{Status: filter}
	if name, _ := cmd.Flags().GetString("category"); name != "" {
		if err := task.ValidateCategory(name); err != nil {
			return err
		}
		opts.Category, _ = task.ParseCategory(name)
	}

	tasks := view.Apply(st.Snapshot().Tasks, opts, time.Now())
	return outputTaskList(tasks)
}

func outputTaskList(tasks []task.Task) error {
	format := outputFormat()
	if format == output.FormatJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	}
	if format == output.FormatCompact {
		output.TaskCompact(os.Stdout, tasks)
		return nil
	}

	output.TaskTable(os.Stdout, tasks)
	return nil
}
