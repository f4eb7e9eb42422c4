package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub"},
	Short:   "Manage subtasks of a task",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add ID TITLE",
	Short: "Add a subtask to a task",
	Args:  cobra.ExactArgs(2), //nolint:mnd // task ID and title
	RunE:  runSubtaskAdd,
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle ID SUBTASK_ID",
	Short: "Toggle a subtask's completion state",
	Long: `Flips a subtask between pending and completed.

The parent's completion is re-derived whenever a subtask flips: the parent is
completed exactly when every subtask is complete.`,
	Args: cobra.ExactArgs(2), //nolint:mnd // task ID and subtask ID
	RunE: runSubtaskToggle,
}

var subtaskDeleteCmd = &cobra.Command{
	Use:     "delete ID SUBTASK_ID",
	Aliases: []string{"rm"},
	Short:   "Delete a subtask",
	Args:    cobra.ExactArgs(2), //nolint:mnd // task ID and subtask ID
	RunE:    runSubtaskDelete,
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskDeleteCmd)
	rootCmd.AddCommand(subtaskCmd)
}

func runSubtaskAdd(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	title := args[1]
	if err := task.ValidateTitle(title); err != nil {
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
		return s.AddSubtask(id, title)
	})
	if err != nil {
		return err
	}

	t, _ := snap.Find(id)
	sub := t.Subtasks[len(t.Subtasks)-1]
	logActivity(cfg, "subtask-add", id, title)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added subtask #%d to task #%d: %s", sub.ID, id, sub.Title)
	return nil
}

func runSubtaskToggle(_ *cobra.Command, args []string) error {
	id, subID, err := parseSubtaskArgs(args)
	if err != nil {
		return err
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	if _, err := findSubtask(st, id, subID); err != nil {
		return err
	}

	snap, err := st.Apply(func(s store.Snapshot) store.Snapshot {
		return s.ToggleSubtask(id, subID)
	})
	if err != nil {
		return err
	}

	t, _ := snap.Find(id)
	logActivity(cfg, "subtask-toggle", id, strconv.Itoa(subID))

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	for _, sub := range t.Subtasks {
		if sub.ID != subID {
			continue
		}
		state := "pending"
		if sub.Done {
			state = "completed"
		}
		output.Messagef(os.Stdout, "Subtask #%d of task #%d is now %s: %s", sub.ID, id, state, sub.Title)
	}
	if t.Done {
		output.Messagef(os.Stdout, "Task #%d is now completed", id)
	}
	return nil
}

func runSubtaskDelete(_ *cobra.Command, args []string) error {
	id, subID, err := parseSubtaskArgs(args)
	if err != nil {
		return err
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	sub, err := findSubtask(st, id, subID)
	if err != nil {
		return err
	}

	if _, err := st.Apply(func(s store.Snapshot) store.Snapshot {
		return s.DeleteSubtask(id, subID)
	}); err != nil {
		return err
	}

	logActivity(cfg, "subtask-delete", id, sub.Title)

	if outputFormat() == output.FormatJSON {
		t, _ := st.Snapshot().Find(id)
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Deleted subtask #%d from task #%d: %s", subID, id, sub.Title)
	return nil
}

func parseSubtaskArgs(args []string) (id, subID int, err error) {
	id, err = parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	subID, err = parseID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return id, subID, nil
}

// findSubtask resolves a task/subtask pair or returns a structured error.
func findSubtask(st *store.Store, id, subID int) (task.Subtask, error) {
	t, err := mustFind(st, id)
	if err != nil {
		return task.Subtask{}, err
	}
	for _, sub := range t.Subtasks {
		if sub.ID == subID {
			return sub, nil
		}
	}
	return task.Subtask{}, task.SubtaskNotFound(id, subID)
}
