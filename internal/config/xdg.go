// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "evilword"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDBPath returns the default path for the SQLite lexicon.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "lexicon.db")
}

// DefaultWordfreqCacheDir returns the cache directory for wordfreq wheels.
func DefaultWordfreqCacheDir() string {
	return filepath.Join(XDGDataHome(), appName, "wordfreq")
}

// DefaultLogPath returns the log file used while the TUI owns the terminal.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultDictPath is the system word list used as the guess dictionary.
const DefaultDictPath = "/usr/share/dict/words"
