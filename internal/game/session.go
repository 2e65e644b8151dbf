package game

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/evilword/internal/clue"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	// Playing accepts letters and guesses.
	Playing Phase = iota
	// Won means the last guess matched the target.
	Won
	// Lost means the guesses ran out or the player gave up.
	Lost
)

func (p Phase) String() string {
	switch p {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Hints shown to the player.
const (
	HintTooShort   = "Too short"
	HintTooLong    = "Too long"
	HintNotAWord   = "Not a valid word"
	HintWon        = "You won! (Enter to play again)"
	hintLostFormat = "You lost! The answer was %s. (Enter to play again)"
	hintGaveUpFmt  = "The answer was %s. (Enter to play again)"
	hintLengthFmt  = "%d letters"
	hintNoWordsFmt = "No %d-letter words available"
	hintRangeFmt   = "Word length must be %d-%d"
)

func lostHint(target string) string {
	return fmt.Sprintf(hintLostFormat, reveal(target))
}

func gaveUpHint(target string) string {
	return fmt.Sprintf(hintGaveUpFmt, reveal(target))
}

func lengthHint(n int) string {
	return fmt.Sprintf(hintLengthFmt, n)
}

func noWordsHint(n int) string {
	return fmt.Sprintf(hintNoWordsFmt, n)
}

func lengthRangeHint() string {
	return fmt.Sprintf(hintRangeFmt, MinWordLength, MaxWordLength)
}

func reveal(target string) string {
	return strings.ToUpper(target)
}

// Session is one game. It is a value: transitions return a new Session and never
// modify the slices of the one they were given.
type Session struct {
	ID         string
	WordLength int
	MaxGuesses int
	Guesses    []string
	Input      string
	Target     string
	Pool       []string
	Phase      Phase
	Hint       string
}

// RowKind describes how a grid row should be drawn.
type RowKind int

const (
	// RowLocked is a committed guess with clues.
	RowLocked RowKind = iota
	// RowEditing is the in-progress input.
	RowEditing
	// RowEmpty is an unused row.
	RowEmpty
)

// Row is one line of the guess grid. Letters of an editing row carry no clue.
type Row struct {
	Kind    RowKind
	Letters []clue.CluedLetter
}

// Rows returns MaxGuesses rows: locked guesses, the editing row while playing,
// then empty rows.
func (s Session) Rows() []Row {
	rows := make([]Row, 0, s.MaxGuesses)
	for _, guess := range s.Guesses {
		rows = append(rows, Row{Kind: RowLocked, Letters: clue.Compute(guess, s.Target)})
	}
	if s.Phase == Playing && len(rows) < s.MaxGuesses {
		letters := make([]clue.CluedLetter, len(s.Input))
		for i := 0; i < len(s.Input); i++ {
			letters[i] = clue.CluedLetter{Letter: s.Input[i]}
		}
		rows = append(rows, Row{Kind: RowEditing, Letters: letters})
	}
	for len(rows) < s.MaxGuesses {
		rows = append(rows, Row{Kind: RowEmpty})
	}
	return rows
}

// LetterInfo returns the best clue seen per letter, for keyboard highlighting.
func (s Session) LetterInfo() map[byte]clue.Clue {
	return clue.LetterInfo(s.Guesses, s.Target)
}

// GuessesLeft returns how many guesses can still be committed.
func (s Session) GuessesLeft() int {
	if s.Phase != Playing {
		return 0
	}
	return s.MaxGuesses - len(s.Guesses)
}

// CanGiveUp reports whether the give-up action is available.
func (s Session) CanGiveUp() bool {
	return s.Phase == Playing && len(s.Guesses) > 0
}

// AcceptsLetters reports whether letter keys change the input.
func (s Session) AcceptsLetters() bool {
	return s.Phase == Playing && len(s.Guesses) < s.MaxGuesses
}

// Over reports whether the game has ended.
func (s Session) Over() bool {
	return s.Phase != Playing
}
