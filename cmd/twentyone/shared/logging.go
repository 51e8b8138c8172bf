// Package shared holds helpers used by the twentyone commands.
package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LoggerOptions selects where and how much to log
type LoggerOptions struct {
	Level  log.Level
	File   string // empty writes to Fallback
	Prefix string

	// Fallback receives logs when File is empty. nil discards them.
	Fallback io.Writer
}

// SetupLogger creates a logger and a close function for any file it opened
func SetupLogger(opts LoggerOptions) (*log.Logger, func() error, error) {
	out := opts.Fallback
	closeFn := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           opts.Level,
		Prefix:          opts.Prefix,
	})
	return logger, closeFn, nil
}
