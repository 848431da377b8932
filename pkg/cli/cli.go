// Package cli implements the calcx command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/config"
	"github.com/funvibe/calcx/internal/logger"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// IOStreams are the standard streams a command uses.
type IOStreams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// usageError marks an error caused by bad invocation rather than by the work
// itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...interface{}) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Execute runs calcx with the process arguments and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, os.Args[1:], IOStreams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Run runs calcx with args and returns the exit code.
func Run(ctx context.Context, args []string, streams IOStreams) int {
	root := NewRootCommand(streams)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(streams.Err, "Error: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(streams.Err, "Run '%s --help' for usage.\n", root.Name())
		return ExitUsage
	}
	return ExitFailure
}

// app is the state shared by every command.
type app struct {
	streams    IOStreams
	configPath string
	logLevel   string

	cfg *config.Config
	log *slog.Logger
}

// setup loads configuration and builds the logger. It runs before every
// command.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return err
		}
		path = found
	}

	if path == "" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level := a.cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	a.log = logger.New(a.streams.Err, level, isTerminal(a.streams.Err))
	if path != "" {
		a.log.Debug("config loaded", "path", path)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logger.IsTerminal(f)
}

// usageArgs wraps a positional-args validator so its failures are usage
// errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// NewRootCommand builds the calcx command tree.
func NewRootCommand(streams IOStreams) *cobra.Command {
	a := &app{streams: streams}

	root := newBatchCommand(a)
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default: "+config.ConfigFileName+" in this or a parent directory)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error, none")

	root.AddCommand(
		newEvalCommand(a),
		newTokensCommand(a),
		newReplCommand(a),
		newServeCommand(a),
		newHistoryCommand(a),
	)
	return root
}
