package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestErrOmitsNil(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")
	logger.Info("saved", Err(nil), TaskID("42"))
	if strings.Contains(buf.String(), KeyError) {
		t.Fatalf("nil error should be omitted: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "task_id=42") {
		t.Fatalf("expected task id attribute: %q", buf.String())
	}

	buf.Reset()
	logger.Warn("save failed", Err(errors.New("disk full")))
	if !strings.Contains(buf.String(), `error="disk full"`) {
		t.Fatalf("expected error attribute: %q", buf.String())
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasks.log")
	logger, closeFn, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	WithOperation(logger, "load").Debug("loaded", Count(3))
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "operation=load") || !strings.Contains(string(data), "count=3") {
		t.Fatalf("unexpected log content: %q", data)
	}
}
