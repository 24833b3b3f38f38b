package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// openLogger creates a file logger. The terminal belongs to Bubble Tea, so
// logs never go to stdout or stderr while playing.
// The returned close function is always non-nil.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	expanded, err := expandHome(path)
	if err != nil {
		return discardLogger(), func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return discardLogger(), func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discardLogger(), func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
