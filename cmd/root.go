package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/config"
	"github.com/HaiFongPan/tripguide/internal/responsive"
	"github.com/HaiFongPan/tripguide/internal/tui"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripguide",
	Short: "A terminal trip planner with responsive layouts",
	Long: `Tripguide is a terminal trip-planning app: a home feed and a plan form whose
layout scales from a 390x844 design baseline to the current window, with debounced
screen transitions and staggered list entrances.

Example usage:
  tripguide                              # Interactive app
  tripguide layout --cols 120 --rows 40  # Print scaled metrics for a window
  tripguide gate 0 250 301               # Replay triggers through a gate
  tripguide stagger --count 5 --base 150ms`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", fmt.Sprintf("config file (default is %s)", config.GetDefaultConfigPath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging()
	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file to prevent UI interference
	logFile := globalConfig.Log.File
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		logrus.Warnf("Failed to create log directory for %s: %v", logFile, err)
	} else {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// newEngine builds the scale engine for a viewport given in device-independent units
func newEngine(cfg *config.Config, width, height float64) (*responsive.Engine, error) {
	viewport, err := responsive.NewViewport(width, height)
	if err != nil {
		return nil, err
	}
	return cfg.Layout.NewEngine(viewport)
}

// runInteractive runs the trip guide TUI
func runInteractive() error {
	cfg := globalConfig

	// Start from the baseline; the first WindowSizeMsg replaces it
	engine, err := newEngine(cfg, cfg.Layout.BaseWidth, cfg.Layout.BaseHeight)
	if err != nil {
		return fmt.Errorf("failed to create layout engine: %w", err)
	}

	model, err := tui.NewAppModel(cfg, engine, animation.NewSystemClock())
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	watching, err := config.Watch(cfgFile, func(reloaded *config.Config, err error) {
		if err == nil {
			program.Send(tui.ConfigReloadedMsg{Config: reloaded})
		}
	})
	if err != nil {
		logrus.Warnf("Config watch disabled: %v", err)
	} else if !watching {
		logrus.Debug("No config file in use, live reload disabled")
	}

	_, err = program.Run()
	return err
}
