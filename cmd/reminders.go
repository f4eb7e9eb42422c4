package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List current reminders",
	Long: `Evaluates the reminder passes against the current clock and lists what
is due today or tomorrow and what starts within the next 30 minutes.`,
	RunE: runReminders,
}

func init() {
	rootCmd.AddCommand(remindersCmd)
}

func runReminders(_ *cobra.Command, _ []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	s := schedule.New(nil, cfg.Notifications.Enabled)
	reminders := s.Reminders(st.Snapshot())

	format := outputFormat()
	if format == output.FormatJSON {
		if reminders == nil {
			reminders = []schedule.Reminder{}
		}
		return output.JSON(os.Stdout, reminders)
	}
	if format == output.FormatCompact {
		output.ReminderCompact(os.Stdout, reminders)
		return nil
	}

	output.ReminderTable(os.Stdout, reminders)
	return nil
}
