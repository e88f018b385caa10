// Package logging builds the charmbracelet loggers shared by every component.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a root logger.
type Options struct {
	Level      string // debug, info, warn, error
	Prefix     string
	Timestamps bool
}

// New creates a root logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Component returns l scoped to a component prefix, or a discarding
// logger when l is nil.
func Component(l *log.Logger, name string) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l.WithPrefix(name)
}
