// Package model defines shared data structures.
package model

import "time"

// Config defines the resolved game settings.
type Config struct {
	WordLength int
	MaxGuesses int
	PoolSize   int
	Seed       uint64
	LogLevel   string
	Headless   bool
}

// LexiconImport is a full replacement of the stored lexicon.
type LexiconImport struct {
	// Ranked is ordered most frequent first.
	Ranked     []string
	Dictionary []string
	Deny       []string
	Source     string
}

// LexiconInfo describes the stored lexicon.
type LexiconInfo struct {
	Source     string
	ImportedAt time.Time
	Ranked     int
	Dictionary int
	Deny       int
}

// LengthSummary counts stored words of one length.
type LengthSummary struct {
	Length     int
	Candidates int
	Dictionary int
}
