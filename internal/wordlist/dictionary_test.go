package wordlist

import (
	"slices"
	"testing"
)

func TestDictionaryContains(t *testing.T) {
	dict := NewDictionary([]string{"crane", "Slate", "x-ray", "think"})
	if !dict.Contains("crane") || !dict.Contains("think") {
		t.Fatalf("expected playable words to be present")
	}
	if dict.Contains("Slate") || dict.Contains("slate") || dict.Contains("x-ray") {
		t.Fatalf("expected non-playable entries to be dropped")
	}
	if dict.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", dict.Len())
	}
}

func TestDictionarySuggest(t *testing.T) {
	dict := NewDictionary([]string{"crane", "crate", "trace", "grace", "think", "cranes"})
	got := dict.Suggest("crame", 3)
	want := []string{"crane", "crate", "grace"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := dict.Suggest("zzzzz", 3); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
	if got := dict.Suggest("crame", 0); got != nil {
		t.Fatalf("expected nil for zero limit, got %v", got)
	}
}
