package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/config"
)

// Exit codes. ExitCodeInterrupted follows the shell convention for SIGINT.
const (
	ExitCodeOK          = 0
	ExitCodeError       = 1
	ExitCodeUsage       = 2
	ExitCodeStateLimit  = 3
	ExitCodeInterrupted = 130
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

// NewRootCommand builds the valvenet command tree. Output goes to the
// command's configured writers.
func NewRootCommand() *cobra.Command {
	ro := &rootOptions{}

	root := &cobra.Command{
		Use:   "valvenet",
		Short: "Valve network pressure solver",
		Long: `Find how much pressure one agent, or two agents working together,
can release from a network of valves and tunnels within a time budget.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ro.configPath, "config", "", "YAML config file (default: built-in settings)")
	pf.StringVar(&ro.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&ro.logFormat, "log-format", "", "Log format: text, json, auto")

	root.AddCommand(newSolveCommand(ro), newExportCommand(), newGenerateCommand())

	return root
}

// setup loads the config file, applies the logging flags and stores the
// logger in the command context.
func (ro *rootOptions) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if ro.configPath != "" {
		var err error
		if cfg, err = config.Load(ro.configPath); err != nil {
			return &ExitError{Code: ExitCodeUsage, Err: err}
		}
	}
	if ro.logLevel != "" {
		cfg.Log.Level = ro.logLevel
	}
	if ro.logFormat != "" {
		cfg.Log.Format = ro.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCodeUsage, Err: err}
	}
	ro.cfg = cfg

	logger := newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, logger))
	logger.Debug("configuration loaded", "config", ro.configPath, "budget", cfg.Budget)

	return nil
}

// Execute runs the command tree with args and returns the process exit
// code. Errors are printed to stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitCodeOK
	}
	fmt.Fprintln(stderr, "Error:", err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return ExitCodeInterrupted
	}

	return ExitCodeError
}
