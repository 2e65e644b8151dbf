// Package clue computes per-letter feedback for a guess against a target word.
package clue

// Clue is the feedback for a single letter position.
// Values are ordered: Absent < Elsewhere < Correct.
type Clue int

const (
	// Absent means the letter does not occur in the remaining target letters.
	Absent Clue = iota
	// Elsewhere means the letter occurs in the target at another position.
	Elsewhere
	// Correct means the letter matches the target at this position.
	Correct
)

// String returns a lowercase name for the clue.
func (c Clue) String() string {
	switch c {
	case Correct:
		return "correct"
	case Elsewhere:
		return "elsewhere"
	default:
		return "absent"
	}
}

// Weight returns how much a clue reveals about the target.
func (c Clue) Weight() float64 {
	switch c {
	case Correct:
		return 1.0
	case Elsewhere:
		return 0.5
	default:
		return 0
	}
}

// CluedLetter pairs a guessed letter with its clue.
type CluedLetter struct {
	Letter byte
	Clue   Clue
}

// Pattern is the clue-only view of a clued guess.
type Pattern []Clue

// Equal reports whether two patterns carry the same clue at every position.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Compute returns the clues for guess against target.
// Both words must be lowercase a-z and share the same length.
func Compute(guess, target string) []CluedLetter {
	out := make([]CluedLetter, len(guess))
	var remaining [26]int

	for i := 0; i < len(guess); i++ {
		out[i].Letter = guess[i]
		if guess[i] == target[i] {
			out[i].Clue = Correct
			continue
		}
		remaining[target[i]-'a']++
	}

	for i := 0; i < len(guess); i++ {
		if out[i].Clue == Correct {
			continue
		}
		idx := guess[i] - 'a'
		if remaining[idx] > 0 {
			out[i].Clue = Elsewhere
			remaining[idx]--
		}
	}
	return out
}

// Patterns returns only the clues for guess against target.
func Patterns(guess, target string) Pattern {
	clued := Compute(guess, target)
	p := make(Pattern, len(clued))
	for i, cl := range clued {
		p[i] = cl.Clue
	}
	return p
}

// Solved reports whether every letter is Correct.
func Solved(clued []CluedLetter) bool {
	for _, cl := range clued {
		if cl.Clue != Correct {
			return false
		}
	}
	return true
}

// LetterInfo returns the best clue observed for each letter across guesses.
func LetterInfo(guesses []string, target string) map[byte]Clue {
	info := make(map[byte]Clue)
	for _, guess := range guesses {
		for _, cl := range Compute(guess, target) {
			prev, seen := info[cl.Letter]
			if !seen || cl.Clue > prev {
				info[cl.Letter] = cl.Clue
			}
		}
	}
	return info
}
