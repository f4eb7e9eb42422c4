package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	RunE:  runConfigShow,
}

var configNotificationsCmd = &cobra.Command{
	Use:   "notifications on|off",
	Short: "Grant or revoke push alerts",
	Long: `Controls the notification permission. While off, no push alerts are
emitted and no reminder-sent flags are recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigNotifications,
}

func init() {
	configCmd.AddCommand(configNotificationsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{
			"dir":              cfg.Dir(),
			"version":          cfg.Version,
			"data_file":        cfg.DataFile,
			"default_category": cfg.DefaultCategory,
			"notifications":    cfg.Notifications.Enabled,
		})
	}

	fmt.Fprintf(os.Stdout, "%-20s %s\n", "dir", cfg.Dir())
	fmt.Fprintf(os.Stdout, "%-20s %d\n", "version", cfg.Version)
	fmt.Fprintf(os.Stdout, "%-20s %s\n", "data_file", cfg.DataFile)
	fmt.Fprintf(os.Stdout, "%-20s %s\n", "default_category", cfg.DefaultCategory)
	fmt.Fprintf(os.Stdout, "%-20s %t\n", "notifications", cfg.Notifications.Enabled)
	return nil
}

func runConfigNotifications(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch args[0] {
	case "on":
		cfg.Notifications.Enabled = true
	case "off":
		cfg.Notifications.Enabled = false
	default:
		return clierr.Newf(clierr.InvalidInput, "expected on or off, got %q", args[0])
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{"notifications": cfg.Notifications.Enabled})
	}

	output.Messagef(os.Stdout, "Notifications %s", args[0])
	return nil
}
