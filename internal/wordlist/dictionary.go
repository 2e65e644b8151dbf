package wordlist

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// Dictionary is the set of words accepted as guesses.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from playable words; other entries are dropped.
func NewDictionary(words []string) *Dictionary {
	playable := lo.Filter(words, func(w string, _ int) bool { return IsPlayable(w) })
	return &Dictionary{words: lo.SliceToMap(playable, func(w string) (string, struct{}) {
		return w, struct{}{}
	})}
}

// Contains reports whether word is a valid guess.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Suggest returns up to limit dictionary words of the same length closest to word,
// nearest first, ties broken alphabetically.
func (d *Dictionary) Suggest(word string, limit int) []string {
	if limit <= 0 || word == "" {
		return nil
	}
	type scored struct {
		word string
		dist int
	}
	maxDist := suggestLimit(len(word))
	var found []scored
	for cand := range d.words {
		if len(cand) != len(word) || cand == word {
			continue
		}
		dist := levenshtein.ComputeDistance(word, cand)
		if dist > maxDist {
			continue
		}
		found = append(found, scored{word: cand, dist: dist})
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist == found[j].dist {
			return found[i].word < found[j].word
		}
		return found[i].dist < found[j].dist
	})
	if len(found) > limit {
		found = found[:limit]
	}
	return lo.Map(found, func(s scored, _ int) string { return s.word })
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
