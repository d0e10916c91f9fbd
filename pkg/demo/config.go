package demo

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/zoobzio/clockz"
)

// Config selects the inputs the sections work on.
type Config struct {
	// Input is parsed and checked by the propagation section.
	Input string
	// SourcePath is read by the propagation section to report its length.
	SourcePath string
	// NumbersPath holds the number read by the custom and erased sections.
	NumbersPath string
}

func DefaultConfig() Config {
	return Config{
		Input:       "123",
		SourcePath:  "go.mod",
		NumbersPath: "numbers.txt",
	}
}

// absolute resolves the file paths against the working directory.
func (c Config) absolute() Config {
	if p, err := filepath.Abs(c.SourcePath); err == nil {
		c.SourcePath = p
	}
	if p, err := filepath.Abs(c.NumbersPath); err == nil {
		c.NumbersPath = p
	}
	return c
}

type Option func(*Runner)

func WithFilesystem(fsys billy.Basic) Option {
	return func(r *Runner) {
		r.fs = fsys
	}
}

// WithOutput sets where outcomes (out) and failures (errOut) are printed.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.out = out
		r.errOut = errOut
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithClock(clock clockz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}
