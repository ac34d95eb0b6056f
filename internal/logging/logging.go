// Package logging builds the structured loggers used by the front ends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is the default logger prefix.
const Prefix = "invaders"

// New creates a logger writing to w.
func New(w io.Writer, prefix string) *log.Logger {
	if prefix == "" {
		prefix = Prefix
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, Prefix)
}

// Open returns a logger for the given destination and a function that closes
// it. An empty path logs to fallback; a path appends to that file.
// The terminal front end passes io.Discard as fallback so log lines never
// land on the alternate screen.
func Open(path string, fallback io.Writer) (*log.Logger, func() error, error) {
	if path == "" {
		return New(fallback, Prefix), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger := New(f, Prefix)
	return logger, f.Close, nil
}

// SetVerbose switches the logger between info and debug level.
func SetVerbose(logger *log.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.InfoLevel)
}
