package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/logger"
)

var (
	flagConfig   string
	flagEnvFile  string
	flagLogLevel string
	flagWorkers  int
	flagQuiet    bool
)

var (
	settings  config.Settings
	appLog    *logger.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:               "savings-planner",
	Short:             "Savings suggestion engine",
	Long:              "Project compound-interest savings and find which products and monthly efforts reach a goal.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default "+config.SettingsPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file with SAVINGS_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", -1, "Parallel workers for batch suggestions (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// setup loads settings, applies environment overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}

	s, err := config.LoadSettingsFrom(settingsPath())
	if err != nil {
		return err
	}
	if err := s.ApplyEnv(); err != nil {
		return err
	}
	if flagLogLevel != "" {
		s.Logging.Level = flagLogLevel
	}
	if flagWorkers >= 0 {
		s.General.Workers = flagWorkers
	}
	settings = s

	level, err := logger.ParseLevel(settings.Logging.Level)
	if err != nil {
		return err
	}
	l, closer, err := logger.Setup(settings.Logging.File, int64(settings.Logging.MaxSizeMB), settings.Logging.MaxBackups, level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", err)
	}
	appLog, logCloser = l, closer
	return nil
}

// progress prints batch progress to stderr unless --quiet is set.
func progress(cmd *cobra.Command) func(done, total int) {
	return func(done, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\r  Evaluating [%d/%d]", done, total)
		if done == total {
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}
}
