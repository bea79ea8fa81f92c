package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to the settings file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func settingsPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.SettingsPath()
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	path := settingsPath()

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Default format: %s\n", settings.General.DefaultFormat)
	if settings.General.Workers > 0 {
		fmt.Fprintf(out, "    Workers:        %d\n", settings.General.Workers)
	} else {
		fmt.Fprintln(out, "    Workers:        one per CPU")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Cache]")
	if settings.Cache.RedisAddr != "" {
		fmt.Fprintf(out, "    Redis:   %s\n", settings.Cache.RedisAddr)
	} else {
		fmt.Fprintln(out, "    Redis:   not configured (in-memory)")
	}
	fmt.Fprintf(out, "    TTL:     %s\n", settings.CacheTTL())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [History]")
	fmt.Fprintf(out, "    Enabled:  %v\n", settings.History.Enabled)
	fmt.Fprintf(out, "    Database: %s\n", settings.History.DBPath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level: %s\n", settings.Logging.Level)
	if settings.Logging.File != "" {
		fmt.Fprintf(out, "    File:  %s (%d MB x %d backups)\n", settings.Logging.File, settings.Logging.MaxSizeMB, settings.Logging.MaxBackups)
	} else {
		fmt.Fprintln(out, "    File:  stderr only")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	if err := config.SaveSettingsTo(path, settings); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
	return nil
}
