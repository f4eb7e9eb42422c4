package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/store"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add [TITLE]",
	Aliases: []string{"create"},
	Short:   "Add a new task",
	Long: `Adds a new task with the given title and optional scheduling fields.

Title can be provided as a positional argument or via --title flag.
New tasks start pending, with no subtasks, at the end of the list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("title", "", "task title (alternative to positional argument)")
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().String("start", "", "start time (HH:MM, same day as due date)")
	addCmd.Flags().String("end", "", "end time (HH:MM, same day as due date)")
	addCmd.Flags().String("category", "", "category (work, personal, study, health, other)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "cat" {
			name = "category"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	title, err := resolveAddTitle(cmd, args)
	if err != nil {
		return err
	}
	if err := task.ValidateTitle(title); err != nil {
		return err
	}

	due, start, end, category, err := resolveAddFields(cmd, cfg.DefaultCategory)
	if err != nil {
		return err
	}

	snap, err := st.Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTask(title, due, start, end, category)
	})
	if err != nil {
		return err
	}

	t := snap.Tasks[len(snap.Tasks)-1]
	logActivity(cfg, "add", t.ID, t.Title)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added task #%d: %s", t.ID, t.Title)
	output.Messagef(os.Stdout, "  Category: %s", t.Category)
	if t.DueDate != "" {
		output.Messagef(os.Stdout, "  Due: %s", t.DueDate)
	}
	return nil
}

// resolveAddTitle returns the task title from either the positional arg or --title flag.
func resolveAddTitle(cmd *cobra.Command, args []string) (string, error) {
	flagTitle, _ := cmd.Flags().GetString("title")
	hasPositional := len(args) > 0
	hasFlag := flagTitle != ""

	switch {
	case hasPositional && hasFlag:
		return "", clierr.New(clierr.InvalidInput,
			"title provided both as argument and --title flag; use one or the other")
	case hasPositional:
		return args[0], nil
	case hasFlag:
		return flagTitle, nil
	default:
		return "", errors.New("title is required: provide it as an argument or with --title")
	}
}

func resolveAddFields(cmd *cobra.Command, defaultCategory string) (due, start, end string, category task.Category, err error) {
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		due, err = task.ValidateDueDate(v)
		if err != nil {
			return "", "", "", "", err
		}
	}
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		start, err = task.ValidateClock("start", v)
		if err != nil {
			return "", "", "", "", err
		}
	}
	if v, _ := cmd.Flags().GetString("end"); v != "" {
		end, err = task.ValidateClock("end", v)
		if err != nil {
			return "", "", "", "", err
		}
	}

	name := defaultCategory
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		name = v
	}
	if err := task.ValidateCategory(name); err != nil {
		return "", "", "", "", err
	}
	category, _ = task.ParseCategory(name)
	return due, start, end, category, nil
}
