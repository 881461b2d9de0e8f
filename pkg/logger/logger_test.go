package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelWarn, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message logged below level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message logged below level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message not logged")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message not logged")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf)

	log.Info("scanning", F("path", "lib"), F("files", 42))

	out := buf.String()
	if !strings.Contains(out, "path=lib") {
		t.Errorf("missing path field in %q", out)
	}
	if !strings.Contains(out, "files=42") {
		t.Errorf("missing files field in %q", out)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelInfo, &buf).WithFields(F("component", "graph"))

	log.Info("built")

	if !strings.Contains(buf.String(), "component=graph") {
		t.Errorf("missing persistent field in %q", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelError, &buf)
	log.Info("hidden")
	log.SetLevel(LevelDebug)
	log.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("message logged before SetLevel lowered threshold")
	}
	if !strings.Contains(out, "shown") {
		t.Error("message not logged after SetLevel")
	}
}

func TestNewSilent(t *testing.T) {
	log := NewSilent()
	log.Error("nothing")
	// No output writer to inspect; just ensure no panic.
}

func TestLevelString(t *testing.T) {
	levels := map[Level]string{
		LevelDebug:  "DEBUG",
		LevelInfo:   "INFO",
		LevelWarn:   "WARN",
		LevelError:  "ERROR",
		LevelSilent: "SILENT",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
