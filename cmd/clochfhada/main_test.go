package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withFlags sets global flags for one test and restores them afterwards.
func withFlags(t *testing.T, configPath, logFile, logLevel string) {
	t.Helper()
	oldConfig, oldFile, oldLevel := flagConfig, flagLogFile, flagLogLevel
	flagConfig, flagLogFile, flagLogLevel = configPath, logFile, logLevel
	t.Cleanup(func() {
		flagConfig, flagLogFile, flagLogLevel = oldConfig, oldFile, oldLevel
	})
}

func TestCommandsReturnConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	withFlags(t, missing, "", "info")

	commands := map[string]func() error{
		"play":  func() error { return runPlay(nil, nil) },
		"serve": func() error { return runServe(nil, nil) },
		"web":   func() error { return runWeb(nil, nil) },
	}
	for name, run := range commands {
		t.Run(name, func(t *testing.T) {
			err := run()
			if err == nil {
				t.Fatal("expected an error for a missing config file")
			}
			if !strings.Contains(err.Error(), "loading config") {
				t.Errorf("error = %q, expected it to mention loading config", err)
			}
		})
	}
}

func TestCommandsReturnLoggerErrors(t *testing.T) {
	withFlags(t, "", "", "loud")

	err := runWeb(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "--log-level") {
		t.Errorf("runWeb() = %v, expected an invalid --log-level error", err)
	}
}

func TestNewLoggerWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloch.log")
	withFlags(t, "", path, "debug")

	logger, closer, err := newLogger("cloch", os.Stderr)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("drop timer armed", "interval", "1s")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "drop timer armed") || !strings.Contains(string(data), "cloch") {
		t.Errorf("log file = %q, expected the debug entry with prefix", data)
	}
}
