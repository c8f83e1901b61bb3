// Package cli implements the runecut command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/internal/config"
	"github.com/scalecode-solutions/runecut/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	closers []io.Closer // Closed by execute, whether or not the command failed.

	// Flag values. Empty strings mean "not set, use the environment".
	policy         string
	inputEncoding  string
	outputEncoding string
	logLevel       string
	logFile        string
	text           string
	file           string
	noNewline      bool
}

// NewRootCommand returns the runecut command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newApp())
}

func newApp() *app {
	return &app{log: zerolog.Nop()}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "runecut",
		Short: "Slice UTF-16 text without breaking surrogate pairs",
		Long: `runecut slices text by UTF-16 code unit offsets. When an offset falls
inside a surrogate pair the boundary policy decides whether the pair is
split, kept whole, or discarded.

Text comes from --text, --file, or standard input. Defaults can be set with
RUNECUT_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.policy, "policy", "p", "", "boundary policy: split, keep, discard (env RUNECUT_POLICY)")
	flags.StringVar(&a.text, "text", "", "text to slice, instead of reading input")
	flags.StringVarP(&a.file, "file", "f", "", "read input from `path` instead of stdin")
	flags.StringVar(&a.inputEncoding, "input-encoding", "", "input encoding: auto, utf8, utf16le, utf16be (env RUNECUT_INPUT_ENCODING)")
	flags.StringVar(&a.outputEncoding, "output-encoding", "", "output encoding: utf8, utf16le, utf16be (env RUNECUT_OUTPUT_ENCODING)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled (env RUNECUT_LOG_LEVEL)")
	flags.StringVar(&a.logFile, "log-file", "", "also write logs to a rotated `file` (env RUNECUT_LOG_FILE)")
	flags.BoolVarP(&a.noNewline, "no-newline", "n", false, "do not append a newline to UTF-8 output")

	root.AddCommand(newFromCommand(a), newBetweenCommand(a), newUnitsCommand(a))
	return root
}

// Execute runs the command tree with the given arguments and streams.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return execute(ctx, newApp(), args, stdin, stdout, stderr)
}

func execute(ctx context.Context, a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

// close releases the log sinks opened by setup.
func (a *app) close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log: %w", err))
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// setup loads the environment, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if a.policy != "" {
		if cfg.Policy, err = runecut.ParsePolicy(a.policy); err != nil {
			return err
		}
	}
	if a.inputEncoding != "" {
		cfg.InputEncoding = a.inputEncoding
	}
	if a.outputEncoding != "" {
		cfg.OutputEncoding = a.outputEncoding
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	a.cfg = cfg
	a.log = logger.With().Str("command", cmd.Name()).Logger()
	a.closers = append(a.closers, closer)
	a.log.Debug().
		Str("policy", cfg.Policy.String()).
		Str("input_encoding", cfg.InputEncoding).
		Str("output_encoding", cfg.OutputEncoding).
		Msg("configuration loaded")
	return nil
}

// policyFlag returns the policy named by an optional per-boundary flag,
// falling back to the configured policy.
func (a *app) policyFlag(name, value string) (runecut.Policy, error) {
	if value == "" {
		return a.cfg.Policy, nil
	}
	p, err := runecut.ParsePolicy(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return p, nil
}
