// Package logging builds the structured logger shared by every component
// of the aggregator. It keeps the teacher's constructor-injection shape
// (every component receives a logger, never reaches for a package-level
// global) while upgrading the handler itself to slog + tint.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures the shared logger.
type Options struct {
	Writer    io.Writer
	Level     slog.Level
	NoColor   bool
	AddSource bool
}

// DefaultOptions returns sensible defaults: colorized output on stderr at
// info level.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stderr,
		Level:  slog.LevelInfo,
	}
}

// New builds a *slog.Logger with the tint handler. Component constructors
// throughout this repository take a *slog.Logger exactly the way the
// teacher's constructors took a *log.Logger.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	handler := tint.NewHandler(opts.Writer, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
		AddSource:  opts.AddSource,
	})
	return slog.New(handler)
}

// Nop returns a logger that discards everything, used in tests that don't
// want to assert on log lines.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
