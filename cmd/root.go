// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the basics CLI.
// It exposes each built-in lesson as a subcommand, plus commands to run several
// lessons in sequence and to list what is available, using the Cobra CLI framework.
package cmd

import (
	"fmt"
	"io"
	"os"

	"basics/cli/internal/config"
	"basics/cli/internal/lesson"
	"basics/cli/internal/lesson/catalog"
	"basics/cli/internal/logging"
	"basics/cli/internal/render"
	"basics/cli/internal/terminal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// waiter blocks until the user asks for the next lesson.
type waiter interface {
	Wait() error
}

// app carries state shared by every subcommand for one invocation.
type app struct {
	registry *lesson.Registry
	logger   *zap.Logger
	cfg      config.Config

	verbose     bool
	showVersion bool
	format      string
	pause       bool

	// resolved in PersistentPreRunE
	outFormat render.Format
	doPause   bool

	pauser      waiter
	interactive func() bool
}

func newApp() *app {
	return &app{
		registry: catalog.Default(),
		logger:   zap.NewNop(),
		pauser:   terminal.NewPauser(),
		interactive: func() bool {
			return terminal.IsInteractive(os.Stdin) && terminal.IsInteractive(os.Stdout)
		},
	}
}

// NewRootCmd builds the basics command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "basics",
		Short: "Run short lessons on variables and functions",
		Long: `basics prints small, deterministic lessons that demonstrate core language
features: variables, mutability, shadowing and scope, then functions, multiple
return values and closures.

Run a single lesson by name, or "basics run" to go through all of them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "basics %s\n", Version)
				return nil
			}
			// If no flag is set, show help
			return cmd.Help()
		},
	}

	root.Flags().BoolVar(&a.showVersion, "version", false, "Show version information")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: text, pretty or json")
	root.PersistentFlags().BoolVar(&a.pause, "pause", false, "Wait for Enter between lessons")

	for _, l := range a.registry.All() {
		root.AddCommand(newLessonCmd(a, l))
	}
	root.AddCommand(newRunCmd(a), newListCmd(a), newConfigCmd(a), newVersionCmd())
	return root
}

// setup loads config, then applies flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Bad settings are reported on stderr; the lesson still runs.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), logging.PresentError("config ignored", err))
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, a.verbose)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), logging.PresentError("log level ignored", err))
		if logger, err = logging.New("info", a.verbose); err != nil {
			return err
		}
	}
	a.logger = logger

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = a.format
	}
	a.outFormat, err = render.ParseFormat(format)
	if err != nil {
		return err
	}

	a.doPause = cfg.Pause
	if cmd.Flags().Changed("pause") {
		a.doPause = a.pause
	}

	a.logger.Debug("configured",
		zap.String("format", string(a.outFormat)),
		zap.Bool("pause", a.doPause),
		zap.String("log_level", cfg.LogLevel))
	return nil
}

// runLessons renders lessons to out in order, pausing between them when
// enabled and the session is interactive.
func (a *app) runLessons(out io.Writer, lessons []lesson.Lesson) error {
	r, err := render.New(a.outFormat, out)
	if err != nil {
		return err
	}
	pause := a.doPause && r.Streaming() && a.interactive()
	for i, l := range lessons {
		if i > 0 && pause {
			if err := a.pauser.Wait(); err != nil {
				return err
			}
		}
		steps := l.Run()
		a.logger.Debug("lesson finished", zap.String("lesson", l.Name), zap.Int("lines", len(steps)))
		if err := r.Lesson(l, steps); err != nil {
			return err
		}
	}
	return r.Close()
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("basics", err))
		os.Exit(1)
	}
}
