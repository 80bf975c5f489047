package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewStampsAppAndVersion(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")

	l, err := New(Options{App: "offer-advisor", Version: "1.2.3", JSON: true, OutputPaths: []string{out}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Named("market").Info("market lookup")
	l.Debug("hidden at info level")
	_ = l.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading log output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 entry, got %d: %s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decoding entry: %v", err)
	}

	want := map[string]string{
		"step":       "market lookup",
		FieldApp:     "offer-advisor",
		FieldVersion: "1.2.3",
		"component":  "market",
		"level":      "info",
	}
	for key, value := range want {
		if entry[key] != value {
			t.Fatalf("expected %s=%q, got %v", key, value, entry[key])
		}
	}
}

func TestNewDebugLevel(t *testing.T) {
	l, err := New(Options{Debug: true, OutputPaths: []string{filepath.Join(t.TempDir(), "log")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
}

func TestInitialFieldsSkipsEmpty(t *testing.T) {
	if got := initialFields(" ", ""); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}
}
