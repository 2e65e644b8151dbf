package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLevelAndOutput(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	var buf bytes.Buffer
	if err := Setup("WARN", &buf); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Str("session", "s1").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, `"session":"s1"`) || !strings.Contains(out, "shown") {
		t.Fatalf("expected warn message with field, got %s", out)
	}
}

func TestSetupDefaultsAndRejects(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	if err := Setup("", &bytes.Buffer{}); err != nil {
		t.Fatalf("Setup with empty level failed: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %v", zerolog.GlobalLevel())
	}
	if err := Setup("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestOpenFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "evilword.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
