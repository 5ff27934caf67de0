package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/sysfs/capability"
	"github.com/jmgilman/go/sysfs/config"
	"github.com/jmgilman/go/sysfs/pathext"
	"github.com/jmgilman/go/sysfs/platform"
	"github.com/jmgilman/go/sysfs/resolve"
	"github.com/jmgilman/go/sysfs/searchpath"
)

// app holds the components shared by every subcommand.
type app struct {
	configPath string
	format     string
	logLevel   string

	cfg      *config.Config
	logger   *slog.Logger
	env      platform.Environment
	registry *pathext.Registry
	caps     capability.Provider
	paths    searchpath.Provider
	out      io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}

	cmd := &cobra.Command{
		Use:   "sysfs",
		Short: "Inspect filesystem capabilities and command resolution",
		Long: `sysfs reports what a shell runtime can learn about paths on this platform:
access and executability, special file types, file identity, the executable
extension set, default search paths, and where commands resolve to.

Examples:
  # Show every capability predicate for a path
  sysfs caps /usr/bin/env

  # Emulate Windows semantics on any host
  SYSFS_PLATFORM=windows SYSFS_PATHEXT=".PS1;.EXE" sysfs caps ./deploy.ps1

  # Resolve commands
  sysfs which git make

  # Run a command with its output discarded
  sysfs run --quiet -- make build`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.out = cmd.OutOrStdout()
			return a.init()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/sysfs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&a.format, "output", "o", formatTable, "output format: table, json, yaml")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newCapsCmd(a),
		newExtsCmd(a),
		newPathsCmd(a),
		newWhichCmd(a),
		newRunCmd(a),
	)

	return cmd
}

// init loads configuration and wires the components for the selected platform.
func (a *app) init() error {
	if err := validateFormat(a.format); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		config.ApplyDefaults(cfg)
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Logging, os.Stderr)

	a.env = cfg.Environment(platform.OS())
	a.registry = pathext.New(a.env)
	a.caps, err = capability.ForKind(cfg.Kind(), capability.WithRegistry(a.registry))
	if err != nil {
		return err
	}
	a.paths = searchpath.ForKind(a.caps.Kind(), a.env)

	a.logger.Debug("initialized",
		"platform", a.caps.Kind().String(),
		"config", a.configPath,
	)
	return nil
}

func (a *app) resolver() *resolve.Resolver {
	return resolve.New(a.caps, a.paths,
		resolve.WithEnvironment(a.env),
		resolve.WithRegistry(a.registry),
		resolve.WithLogger(a.logger),
	)
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
