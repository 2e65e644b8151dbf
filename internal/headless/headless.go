// Package headless runs the game over line-oriented text streams.
package headless

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/evilword/internal/clue"
	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/report"
)

const usage = "Type a word to guess. Commands: empty line = enter, :giveup, :length N, :quit"

// Runner plays one terminal-less session stream.
type Runner struct {
	engine  *game.Engine
	session game.Session
	out     io.Writer
}

// NewRunner returns a Runner that writes to out.
func NewRunner(engine *game.Engine, session game.Session, out io.Writer) *Runner {
	return &Runner{engine: engine, session: session, out: out}
}

// Session returns the current game state.
func (r *Runner) Session() game.Session {
	return r.session
}

// Run reads commands from in until EOF or :quit.
func (r *Runner) Run(in io.Reader) error {
	if err := r.printf("%s\n%s\n", header(r.session), usage); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		quit, err := r.handle(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (r *Runner) handle(line string) (bool, error) {
	before := r.session
	switch {
	case line == ":quit" || line == ":q":
		return true, nil
	case line == "" || line == ":enter":
		r.apply(game.Enter())
	case line == ":giveup":
		r.apply(game.GiveUp())
	case strings.HasPrefix(line, ":length"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":length")))
		if err != nil || n < game.MinWordLength || n > game.MaxWordLength {
			return false, r.printf("length must be between %d and %d\n", game.MinWordLength, game.MaxWordLength)
		}
		r.apply(game.SetWordLength(n))
	case strings.HasPrefix(line, ":"):
		return false, r.printf("unknown command %s\n%s\n", line, usage)
	case len(line) > r.session.WordLength && !r.session.Over():
		return false, r.printf("%s\n", game.HintTooLong)
	default:
		r.typeWord(line)
	}
	return false, r.report(before)
}

func (r *Runner) typeWord(word string) {
	for range r.session.Input {
		r.apply(game.Backspace())
	}
	for _, ev := range game.Events(word) {
		r.apply(ev)
	}
}

func (r *Runner) apply(ev game.Event) {
	next, err := r.engine.Apply(r.session, ev)
	if err != nil {
		log.Warn().Err(err).Str("session", r.session.ID).Msg("failed to start session")
	}
	r.session = next
}

func (r *Runner) report(before game.Session) error {
	s := r.session
	if s.ID != before.ID {
		if err := r.printf("%s\n", header(s)); err != nil {
			return err
		}
	} else if len(s.Guesses) > len(before.Guesses) {
		guess := s.Guesses[len(s.Guesses)-1]
		if err := r.printf("%s  %s\n", guess, report.CluedWord(clue.Compute(guess, s.Target))); err != nil {
			return err
		}
	}
	if s.Hint != "" {
		return r.printf("%s\n", s.Hint)
	}
	return nil
}

func header(s game.Session) string {
	return fmt.Sprintf("New game: %d letters, %d guesses.", s.WordLength, s.MaxGuesses)
}

func (r *Runner) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
