// Package adversary picks the least informative target still consistent with past clues.
package adversary

import (
	"errors"

	"github.com/samber/lo"

	"github.com/verte-zerg/evilword/internal/clue"
)

// ErrEmptyPool is returned when there is no candidate to choose from.
var ErrEmptyPool = errors.New("candidate pool is empty")

// Source provides the random tie-break. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Selection is the outcome of a reselection.
type Selection struct {
	Target   string
	Pool     []string
	MinScore float64
}

// IsValidReplacement reports whether candidate would have produced the same clues
// as current for every guess in history.
func IsValidReplacement(candidate, current string, history []string) bool {
	for _, guess := range history {
		if !clue.Patterns(guess, candidate).Equal(clue.Patterns(guess, current)) {
			return false
		}
	}
	return true
}

// Score sums how much the history reveals about candidate.
// Lower scores are less revealing.
func Score(candidate string, history []string) float64 {
	total := 0.0
	for _, guess := range history {
		for _, cl := range clue.Compute(guess, candidate) {
			total += cl.Clue.Weight()
		}
	}
	return total
}

// Reselect filters pool down to the words indistinguishable from current, keeps the
// lowest-scoring ones and picks the new target among them uniformly.
// The returned pool keeps the input order and never aliases pool.
func Reselect(pool []string, current string, history []string, rng Source) (Selection, error) {
	if len(pool) == 0 {
		return Selection{}, ErrEmptyPool
	}

	expected := make([]clue.Pattern, len(history))
	for i, guess := range history {
		expected[i] = clue.Patterns(guess, current)
	}
	valid := lo.Filter(pool, func(candidate string, _ int) bool {
		for i, guess := range history {
			if !clue.Patterns(guess, candidate).Equal(expected[i]) {
				return false
			}
		}
		return true
	})
	if len(valid) == 0 {
		return Selection{}, ErrEmptyPool
	}

	scores := lo.Map(valid, func(candidate string, _ int) float64 {
		return Score(candidate, history)
	})
	minScore := lo.Min(scores)
	worst := lo.Filter(valid, func(_ string, i int) bool {
		return scores[i] == minScore
	})

	return Selection{
		Target:   worst[rng.IntN(len(worst))],
		Pool:     worst,
		MinScore: minScore,
	}, nil
}
