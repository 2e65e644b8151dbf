package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.WordLength != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[game]
word-length = 7
max-guesses = 8
pool-size = 500
seed = 42

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Game.WordLength == nil || *cfg.Game.WordLength != 7 {
		t.Fatalf("unexpected word-length %v", cfg.Game.WordLength)
	}
	if cfg.Game.MaxGuesses == nil || *cfg.Game.MaxGuesses != 8 {
		t.Fatalf("unexpected max-guesses %v", cfg.Game.MaxGuesses)
	}
	if cfg.Game.PoolSize == nil || *cfg.Game.PoolSize != 500 {
		t.Fatalf("unexpected pool-size %v", cfg.Game.PoolSize)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 42 {
		t.Fatalf("unexpected seed %v", cfg.Game.Seed)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected level %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nwords = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != "/tmp/cfg/evilword/config.toml" {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != "/tmp/data/evilword/lexicon.db" {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultWordfreqCacheDir(); got != "/tmp/data/evilword/wordfreq" {
		t.Fatalf("unexpected cache dir %q", got)
	}
	if got := DefaultLogPath(); got != "/tmp/data/evilword/evilword.log" {
		t.Fatalf("unexpected log path %q", got)
	}
}
