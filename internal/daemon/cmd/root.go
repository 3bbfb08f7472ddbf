// Package cmd implements the eyecared command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eyecare-io/eyecare/internal/config"
)

var (
	configPath string
	debug      bool
	foreground bool
)

var rootCmd = &cobra.Command{
	Use:   "eyecared",
	Short: "Remind you to look away from the screen",
	Long: `eyecared runs in the background and, every screen interval, asks you to
look away from the screen. Once you acknowledge, it waits for the away
interval and rings a bell when the break is over. Exit from the tray icon.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(cmd.Context(), daemonOptions{
			ConfigPath: configPath,
			Debug:      debug || config.DebugEnabled(),
			Foreground: foreground,
		})
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.eyecare/config.yaml, or $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Append diagnostics to ~/.eyecare/"+config.DebugLogFileName)
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run without the system tray (for development)")
}

// resolveConfigPath returns the --config flag value or the default location.
func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return config.DefaultReminderFile()
}
