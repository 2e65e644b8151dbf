// Package wordlist provides word list filtering helpers.
package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return IsPlayable
	default:
		return func(string) bool { return true }
	}
}

// IsPlayable reports whether word consists only of lowercase a-z.
func IsPlayable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Clean keeps the words that pass keep, in order, without duplicates.
func Clean(words []string, keep FilterFunc) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		if !keep(word) {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

// ProperNames derives a denylist from a dictionary that capitalises proper nouns:
// every capitalised entry whose lowercase form is not itself an entry.
func ProperNames(entries []string) []string {
	lower := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e != "" && e == strings.ToLower(e) {
			lower[e] = struct{}{}
		}
	}
	var names []string
	seen := map[string]struct{}{}
	for _, e := range entries {
		folded := strings.ToLower(e)
		if e == folded {
			continue
		}
		if _, ok := lower[folded]; ok {
			continue
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		if !IsPlayable(folded) {
			continue
		}
		seen[folded] = struct{}{}
		names = append(names, folded)
	}
	return names
}
