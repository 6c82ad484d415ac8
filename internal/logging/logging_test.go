package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
)

func TestNew_Disabled(t *testing.T) {
	logger, err := New(config.LoggingConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a no-op logger, got nil")
	}
	logger.Info("dropped")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminal.log")

	logger, err := New(config.LoggingConfig{Enabled: true, Level: "debug", Format: "json", Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("dispatched command")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "dispatched command") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminal.log")

	logger, err := New(config.LoggingConfig{Enabled: true, Level: "chatty", Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("info entry missing")
	}
}
