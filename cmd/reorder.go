package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder ID[,ID,...]",
	Short: "Reorder tasks",
	Long: `Assigns a new explicit order from the given ID sequence.

Listed tasks take their position in the sequence; tasks not listed keep their
previous rank. Unknown IDs are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runReorder,
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}

func runReorder(_ *cobra.Command, args []string) error {
	ids, err := parseIDList(args[0])
	if err != nil {
		return err
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	snap, err := st.Apply(func(s store.Snapshot) store.Snapshot {
		return s.Reorder(ids)
	})
	if err != nil {
		return err
	}

	logActivity(cfg, "reorder", 0, args[0])
	return outputTaskList(snap.Tasks)
}
