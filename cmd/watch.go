package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/notify"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
	"github.com/twiced-technology-gmbh/taskwatch/internal/schedule"
	"github.com/twiced-technology-gmbh/taskwatch/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder loop headless",
	Long: `Evaluates reminders once a minute and emits push alerts at the 15 and
5 minute marks before a task's start time. External edits to the tasks file
are picked up live. Runs until interrupted.

Alerts require notifications to be enabled (taskwatch config notifications on).`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	if !cfg.Notifications.Enabled {
		fmt.Fprintln(os.Stderr, "Warning: notifications are off; no alerts will fire.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reload on external changes so reminders see fresh data.
	w, err := watcher.New(cfg.DataPath(), func() {
		_ = st.Reload()
	})
	if err == nil {
		defer w.Close()
		go w.Run(ctx, nil)
	}

	s := schedule.New(notify.NewTerminal(), cfg.Notifications.Enabled)

	output.Messagef(os.Stdout, "Watching %s", cfg.DataPath())
	s.Run(ctx, st, func(a schedule.Alert) {
		output.Messagef(os.Stdout, "%s: %s", a.Title(), a.Body())
	})
	return nil
}
