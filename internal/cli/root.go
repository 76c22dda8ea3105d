// Package cli provides the command-line interface for tasktrack.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/manager"
	"tasktrack/internal/ui"
)

// launchTUIFunc is swapped out in tests.
var launchTUIFunc = ui.Run

// env is the state every subcommand shares once the root pre-run has loaded
// the config and built the logger.
type env struct {
	cfg    config.Config
	logger *zap.Logger
}

func (e *env) newManager() *manager.Manager {
	return manager.New(manager.WithLogger(e.logger))
}

// NewRootCommand creates the root command. Running it without a subcommand
// opens the terminal UI over a fresh manager.
func NewRootCommand(version string) *cobra.Command {
	var configPath string
	var logLevel string
	e := &env{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "tasktrack",
		Short:         "Priority-ordered task tracker",
		Long:          "tasktrack keeps pending tasks in priority order and records completed ones in a history.\n\nRun without arguments to open the interactive view.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolveConfigPath(configPath)
			cfg, err := config.LoadOrCreate(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			e.cfg = cfg
			e.logger = logger
			logger.Debug("config loaded", zap.String("path", path), zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = e.logger.Sync()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(e.newManager(), e.cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or user config dir)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newRunCommand(e))
	root.AddCommand(newVersionCommand(version))
	return root
}

func newRunCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a task script against a fresh task list",
		Long: `Execute a line-oriented script. Reads stdin when no file is given.

Commands:
  add <priority> <description...>
  get <id>
  done
  list
  incomplete
  last

Example:
  printf 'add 3 Write report\nadd 5 Fix bug\ndone\nlist\n' | tasktrack run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := NewScriptRunner(e.newManager(), cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runner.Run(cmd.InOrStdin())
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			return runner.Run(f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json, yaml)")
	return cmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tasktrack %s\n", version)
		},
	}
}
