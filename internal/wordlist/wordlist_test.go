package wordlist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestReadWords(t *testing.T) {
	input := "# comment\ncrane 1200\n\n  slate\nthink 3 extra\n"
	words, err := ReadWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadWords failed: %v", err)
	}
	want := []string{"crane", "slate", "think"}
	if !slices.Equal(words, want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestReadWordsEmpty(t *testing.T) {
	if _, err := ReadWords(strings.NewReader("\n# nothing\n")); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
}

func TestLoadWordsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	var buf bytes.Buffer
	if err := WriteWords(&buf, []string{"crane", "slate"}); err != nil {
		t.Fatalf("WriteWords failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if !slices.Equal(words, []string{"crane", "slate"}) {
		t.Fatalf("unexpected words %v", words)
	}
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
