package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "")

	logger.Info("session started", "variant", "rapid")

	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Errorf("output %q missing prefix", out)
	}
	if !strings.Contains(out, "session started") || !strings.Contains(out, "rapid") {
		t.Errorf("output %q missing message or field", out)
	}
}

func TestOpenFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Open("", &buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	logger.Warn("audio unavailable")
	if !strings.Contains(buf.String(), "audio unavailable") {
		t.Errorf("fallback writer got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "invaders.log")

	logger, closeFn, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("game over", "score", 120)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "game over") {
		t.Errorf("log file = %q", data)
	}
}

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "test")

	logger.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug should be hidden at info level")
	}

	SetVerbose(logger, true)
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug should be shown when verbose")
	}
}
