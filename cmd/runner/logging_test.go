package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.runner/runner.log", filepath.Join(home, ".runner", "runner.log")},
		{"~", home},
		{"/var/log/runner.log", "/var/log/runner.log"},
		{"relative/runner.log", "relative/runner.log"},
		{"~other/runner.log", "~other/runner.log"},
	}
	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runner.log")

	logger, closeLog, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger error: %v", err)
	}
	logger.Debug("debug line", "score", 12)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "debug line") || !strings.Contains(string(data), "score=12") {
		t.Errorf("log file = %q, expected the debug entry", data)
	}
}
