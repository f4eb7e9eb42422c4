package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/config"
	"github.com/twiced-technology-gmbh/taskwatch/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a taskwatch directory",
	Long:  `Creates a taskwatch directory with config.yml. Tasks are stored beside it.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir := flagDir
	if dir == "" {
		dir = config.DefaultDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	// Check if already initialized.
	if _, err := os.Stat(filepath.Join(absDir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.InvalidInput, "already initialized in %s", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	cfg, err := config.Init(absDir)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status": "initialized",
			"dir":    absDir,
			"config": cfg.ConfigPath(),
			"tasks":  cfg.DataPath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized taskwatch in %s", absDir)
	output.Messagef(os.Stdout, "  Config: %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Tasks:  %s", cfg.DataPath())
	return nil
}
