package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eyecare-io/eyecare/internal/config"
	"github.com/eyecare-io/eyecare/internal/models"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective reminder configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, loadErr := config.LoadReminder(path)
		printConfig(cmd.OutOrStdout(), path, cfg, loadErr)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath)
		if err != nil {
			return err
		}
		if config.FileExists(path) && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultReminder(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func printConfig(w io.Writer, path string, cfg *models.ReminderConfig, loadErr error) {
	fmt.Fprintf(w, "  %s %s\n", styleBrand.Render("config"), styleValue.Render(path))
	var cfgErr *config.ConfigError
	if errors.As(loadErr, &cfgErr) {
		fmt.Fprintf(w, "  %s %s\n", styleWarn.Render("warning"), styleWarn.Render(cfgErr.Message()))
	}
	rows := []struct {
		key   string
		value string
	}{
		{"screen_interval_seconds", fmt.Sprintf("%d", cfg.ScreenIntervalSeconds)},
		{"away_interval_seconds", fmt.Sprintf("%d", cfg.AwayIntervalSeconds)},
		{"sound_frequency_hz", fmt.Sprintf("%d", cfg.SoundFrequencyHz)},
		{"sound_duration_ms", fmt.Sprintf("%d", cfg.SoundDurationMs)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "    %-24s %s\n", styleLabel.Render(r.key), styleValue.Render(r.value))
	}
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
