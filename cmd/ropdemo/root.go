package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	platform "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"

	"github.com/ib-77/fallible/pkg/demo"
	"github.com/ib-77/fallible/pkg/demoerr"
	"github.com/ib-77/fallible/pkg/rop"
)

var version = "0.1.0"

type options struct {
	cfg      demo.Config
	logLevel string
	asJSON   bool
}

// execute runs the CLI and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{cfg: demo.DefaultConfig()}
	root := newRootCmd(opts, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	reportFailure(stderr, err, opts.asJSON)
	return 1
}

func newRootCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "ropdemo",
		Short: "Walk through Result-based error handling",
		Long: `ropdemo runs small demonstrations of fallible results: inspecting
success and failure, propagating failures with explicit conversions,
combinators, a custom error taxonomy, and erasing errors at a boundary.

Without a subcommand every section runs in order.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(opts, stdout, stderr).Run()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfg.Input, "input", opts.cfg.Input, "number checked by the propagation section")
	flags.StringVar(&opts.cfg.SourcePath, "source", opts.cfg.SourcePath, "file whose length the propagation section reports")
	flags.StringVar(&opts.cfg.NumbersPath, "numbers", opts.cfg.NumbersPath, "file holding the number to read")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error); raised to error with --json")
	flags.BoolVar(&opts.asJSON, "json", false, "print failures as JSON")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Run every section",
			RunE: func(cmd *cobra.Command, args []string) error {
				return newRunner(opts, stdout, stderr).Run()
			},
		},
		&cobra.Command{
			Use:   "basics",
			Short: "Inspect success and failure values",
			RunE: func(cmd *cobra.Command, args []string) error {
				return newRunner(opts, stdout, stderr).Basics()
			},
		},
		&cobra.Command{
			Use:   "propagate",
			Short: "Propagate parse, read and rule failures",
			RunE: func(cmd *cobra.Command, args []string) error {
				return newRunner(opts, stdout, stderr).Propagation()
			},
		},
		&cobra.Command{
			Use:   "combinators",
			Short: "Show map, map_err and and_then",
			Run: func(cmd *cobra.Command, args []string) {
				newRunner(opts, stdout, stderr).Combinators()
			},
		},
		&cobra.Command{
			Use:   "read",
			Short: "Read a number from a file with the custom error taxonomy",
			RunE: func(cmd *cobra.Command, args []string) error {
				return newRunner(opts, stdout, stderr).ReadNumber()
			},
		},
	)

	return root
}

func newRunner(opts *options, stdout, stderr io.Writer) *demo.Runner {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel(opts)}))
	return demo.NewRunner(opts.cfg,
		demo.WithOutput(stdout, stderr),
		demo.WithLogger(logger),
	)
}

// logLevel keeps everything below error off stderr when failures are
// reported as JSON, so the stream stays a single JSON document.
func logLevel(opts *options) slog.Level {
	level := parseLevel(opts.logLevel)
	if opts.asJSON && level < slog.LevelError {
		return slog.LevelError
	}
	return level
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// toPlatform maps a failure onto a platform error code so callers outside
// this program can branch on it. Raw errors from the erased read are
// classified first.
func toPlatform(err error) platform.PlatformError {
	typed := demoerr.Classify(err)
	if typed == nil {
		return nil
	}

	code := platform.CodeInternal
	switch typed.Kind() {
	case demoerr.IoFailure:
		if errors.Is(typed, fs.ErrNotExist) {
			code = platform.CodeNotFound
		}
	case demoerr.ParseFailure:
		code = platform.CodeInvalidInput
	case demoerr.RuleViolation:
		code = platform.CodeConflict
	}

	return platform.WrapWithContext(err, code, typed.Describe(), map[string]interface{}{
		"kind": typed.Kind().String(),
	})
}

func reportFailure(w io.Writer, err error, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(platform.ToJSON(toPlatform(err))); encErr == nil {
			return
		}
	}

	fmt.Fprintf(w, "Error: %s\n", rop.Describe(err))
	if chain := demo.FormatCauseChain(err); chain != "" {
		fmt.Fprintf(w, "Caused by: %s\n", strings.TrimSpace(chain))
	}
}
