// Package logging builds the daemon's diagnostic logger. Logging is off
// unless explicitly enabled, in which case entries are appended one per line
// to a text file and mirrored to stderr when it is a terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Options describes logger construction parameters.
type Options struct {
	Enabled bool
	Path    string
	Level   slog.Level

	// Console receives a copy of every entry. When nil, stderr is used if it
	// is attached to a terminal.
	Console io.Writer
}

// Logger is a slog logger plus the file it owns, if any.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New constructs the diagnostic logger. A disabled logger discards everything.
func New(opts Options) (*Logger, error) {
	if !opts.Enabled {
		return Nop(), nil
	}

	var writers []io.Writer
	var file *os.File
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log %s: %w", opts.Path, err)
		}
		file = f
		writers = append(writers, f)
	}

	console := opts.Console
	if console == nil && isatty.IsTerminal(os.Stderr.Fd()) {
		console = os.Stderr
	}
	if console != nil {
		writers = append(writers, console)
	}
	if len(writers) == 0 {
		return Nop(), nil
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: opts.Level})
	return &Logger{Logger: slog.New(handler), file: file}, nil
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
