package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle ID",
	Aliases: []string{"done"},
	Short:   "Toggle a task's completion state",
	Long: `Flips a task between pending and completed.

Completing a task also completes all of its subtasks. Un-completing a task
leaves subtask states untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	if _, err := mustFind(st, id); err != nil {
		return err
	}

	snap, err := st.Apply(func(s store.Snapshot) store.Snapshot {
		return s.ToggleTask(id)
	})
	if err != nil {
		return err
	}

	t, _ := snap.Find(id)
	logActivity(cfg, "toggle", id, "")

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	state := "pending"
	if t.Done {
		state = "completed"
	}
	output.Messagef(os.Stdout, "Task #%d is now %s: %s", t.ID, state, t.Title)
	return nil
}
