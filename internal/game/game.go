// Package game implements the guess/feedback state machine of an adversarial word game.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/evilword/internal/adversary"
	"github.com/verte-zerg/evilword/internal/generator"
)

// Limits and defaults for a session.
const (
	MinWordLength     = 4
	MaxWordLength     = 11
	DefaultWordLength = 5
	DefaultMaxGuesses = 6
)

// ErrNoCandidates is returned when no target words exist for a word length.
var ErrNoCandidates = errors.New("no candidate words")

// ErrWordLength is returned for a word length outside MinWordLength-MaxWordLength.
var ErrWordLength = errors.New("word length out of range")

// Dictionary accepts or rejects guesses.
type Dictionary interface {
	Contains(word string) bool
}

// Lexicon supplies the frequency-ordered candidate targets for a word length.
type Lexicon interface {
	Candidates(length int) ([]string, error)
}

// LexiconFunc adapts a function to the Lexicon interface.
type LexiconFunc func(length int) ([]string, error)

// Candidates calls f(length).
func (f LexiconFunc) Candidates(length int) ([]string, error) {
	return f(length)
}

// Options tune an Engine. Zero values select defaults.
type Options struct {
	MaxGuesses int
	Rand       adversary.Source
	NewID      func() string
}

// Engine applies events to sessions. It holds only collaborators; all game state
// lives in Session values.
type Engine struct {
	dict       Dictionary
	lexicon    Lexicon
	rng        adversary.Source
	maxGuesses int
	newID      func() string
}

// NewEngine builds an Engine around a dictionary and a candidate lexicon.
func NewEngine(dict Dictionary, lexicon Lexicon, opts Options) *Engine {
	e := &Engine{
		dict:       dict,
		lexicon:    lexicon,
		rng:        opts.Rand,
		maxGuesses: opts.MaxGuesses,
		newID:      opts.NewID,
	}
	if e.maxGuesses <= 0 {
		e.maxGuesses = DefaultMaxGuesses
	}
	if e.rng == nil {
		e.rng = generator.New(0)
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	return e
}

// MaxGuesses returns the number of guesses per game.
func (e *Engine) MaxGuesses() int {
	return e.maxGuesses
}

// NewSession starts a game with a target drawn uniformly from the full candidate list.
func (e *Engine) NewSession(length int) (Session, error) {
	if length < MinWordLength || length > MaxWordLength {
		return Session{}, fmt.Errorf("%w: %d not in %d-%d", ErrWordLength, length, MinWordLength, MaxWordLength)
	}
	candidates, err := e.lexicon.Candidates(length)
	if err != nil {
		return Session{}, fmt.Errorf("failed to load %d-letter candidates: %w", length, err)
	}
	sel, err := adversary.Reselect(candidates, "", nil, e.rng)
	if err != nil {
		return Session{}, fmt.Errorf("%w for length %d", ErrNoCandidates, length)
	}
	s := Session{
		ID:         e.newID(),
		WordLength: length,
		MaxGuesses: e.maxGuesses,
		Target:     sel.Target,
		Pool:       sel.Pool,
		Phase:      Playing,
	}
	log.Debug().Str("session", s.ID).Int("length", length).Int("pool", len(s.Pool)).Msg("new session")
	return s, nil
}

// Apply returns the session that results from ev. It never modifies s.
// An error is returned only when a new session could not be started; the
// returned session is then s with an explanatory hint.
func (e *Engine) Apply(s Session, ev Event) (Session, error) {
	switch ev.Kind {
	case EventSetWordLength:
		return e.restart(s, ev.Length, lengthHint(ev.Length))
	case EventEnter:
		if s.Phase != Playing {
			return e.restart(s, s.WordLength, "")
		}
		return e.commit(s), nil
	}

	if s.Phase != Playing {
		return s, nil
	}
	switch ev.Kind {
	case EventLetter:
		if ev.Letter == 0 || !s.AcceptsLetters() {
			return s, nil
		}
		next := s
		next.Input = s.Input + string(ev.Letter)
		if len(next.Input) > s.WordLength {
			next.Input = next.Input[:s.WordLength]
		}
		next.Hint = ""
		return next, nil
	case EventBackspace:
		if s.Input == "" {
			return s, nil
		}
		next := s
		next.Input = s.Input[:len(s.Input)-1]
		return next, nil
	case EventGiveUp:
		if !s.CanGiveUp() {
			return s, nil
		}
		next := s
		next.Phase = Lost
		next.Hint = gaveUpHint(s.Target)
		log.Debug().Str("session", s.ID).Int("guesses", len(s.Guesses)).Msg("gave up")
		return next, nil
	}
	return s, nil
}

func (e *Engine) commit(s Session) Session {
	next := s
	if len(s.Input) != s.WordLength {
		next.Hint = HintTooShort
		return next
	}
	if !e.dict.Contains(s.Input) {
		next.Hint = HintNotAWord
		return next
	}

	guess := s.Input
	next.Guesses = append(slices.Clone(s.Guesses), guess)
	next.Input = ""

	switch {
	case guess == s.Target:
		next.Phase = Won
		next.Hint = HintWon
		log.Debug().Str("session", s.ID).Int("guesses", len(next.Guesses)).Msg("won")
		return next
	case len(next.Guesses) == s.MaxGuesses:
		next.Phase = Lost
		next.Hint = lostHint(s.Target)
		log.Debug().Str("session", s.ID).Msg("lost")
		return next
	}

	next.Hint = ""
	sel, err := adversary.Reselect(s.Pool, s.Target, next.Guesses, e.rng)
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID).Msg("reselect failed, keeping current target")
		next.Pool = []string{s.Target}
		return next
	}
	next.Target = sel.Target
	next.Pool = sel.Pool
	log.Debug().
		Str("session", s.ID).
		Int("before", len(s.Pool)).
		Int("after", len(sel.Pool)).
		Float64("minScore", sel.MinScore).
		Msg("reselected target")
	return next
}

func (e *Engine) restart(s Session, length int, hint string) (Session, error) {
	fresh, err := e.NewSession(length)
	if err != nil {
		next := s
		next.Hint = noWordsHint(length)
		if errors.Is(err, ErrWordLength) {
			next.Hint = lengthRangeHint()
		}
		return next, err
	}
	fresh.Hint = hint
	return fresh, nil
}
