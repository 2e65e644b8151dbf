package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/evilword/internal/clue"
	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/model"
)

// CluedWord renders a clued guess as text: upper case for Correct, lower case for
// Elsewhere and a dot for Absent.
func CluedWord(letters []clue.CluedLetter) string {
	var b strings.Builder
	for _, l := range letters {
		switch l.Clue {
		case clue.Correct:
			b.WriteString(strings.ToUpper(string(l.Letter)))
		case clue.Elsewhere:
			b.WriteByte(l.Letter)
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Lengths renders the per-length lexicon summary.
func Lengths(rows []model.LengthSummary) []string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{strconv.Itoa(r.Length), strconv.Itoa(r.Candidates), strconv.Itoa(r.Dictionary)})
	}
	return Table([]string{"Length", "Targets", "Dictionary"}, cells, map[int]bool{0: true, 1: true, 2: true})
}

// Step is the state after one committed guess.
type Step struct {
	Guess    string
	Clues    []clue.CluedLetter
	Pool     int
	MinScore float64
	Target   string
}

// StepFrom captures the last committed guess of s. MinScore is the informativeness
// of the current target against every guess so far.
func StepFrom(s game.Session, minScore float64) Step {
	guess := s.Guesses[len(s.Guesses)-1]
	return Step{
		Guess:    guess,
		Clues:    clue.Compute(guess, s.Target),
		Pool:     len(s.Pool),
		MinScore: minScore,
		Target:   s.Target,
	}
}

// Explain renders a step-by-step trace of the adversary.
func Explain(steps []Step) []string {
	cells := make([][]string, 0, len(steps))
	for i, st := range steps {
		cells = append(cells, []string{
			strconv.Itoa(i + 1),
			st.Guess,
			CluedWord(st.Clues),
			strconv.Itoa(st.Pool),
			fmt.Sprintf("%.1f", st.MinScore),
			st.Target,
		})
	}
	return Table([]string{"#", "Guess", "Clues", "Pool", "Score", "Target"}, cells, map[int]bool{0: true, 3: true, 4: true})
}
