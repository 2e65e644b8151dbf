package headless

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/wordlist"
)

func newTestRunner(t *testing.T, out *bytes.Buffer) *Runner {
	t.Helper()
	dict := wordlist.NewDictionary([]string{"crane", "slate", "word", "ward"})
	lex := wordlist.NewLexicon([]string{"crane", "word"}, dict, nil, 0)
	ids := 0
	engine := game.NewEngine(dict, lex, game.Options{
		Rand: rand.New(rand.NewPCG(7, 7)),
		NewID: func() string {
			ids++
			return "s" + strings.Repeat("+", ids)
		},
	})
	s, err := engine.NewSession(5)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return NewRunner(engine, s, out)
}

func TestRunPlaysToWin(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)
	input := "xx\nzzzzz\nslate\nCRANE\n"
	if err := r.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"New game: 5 letters, 6 guesses.",
		game.HintTooShort,
		game.HintNotAWord,
		"slate  ..A.E",
		"crane  CRANE",
		game.HintWon,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if r.Session().Phase != game.Won {
		t.Fatalf("expected won, got %v", r.Session().Phase)
	}
}

func TestRunRejectsLongWord(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)
	if err := r.Run(strings.NewReader("slates\n")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), game.HintTooLong) {
		t.Fatalf("output missing %q:\n%s", game.HintTooLong, out.String())
	}
	s := r.Session()
	if len(s.Guesses) != 0 || len(s.Input) != 0 {
		t.Fatalf("expected nothing committed, got guesses %v input %q", s.Guesses, s.Input)
	}
}

func TestRunCommands(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(t, &out)
	input := ":length 4\n:length 12\n:bogus\nward\n:giveup\n\n:quit\nslate\n"
	if err := r.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"New game: 4 letters, 6 guesses.",
		"4 letters",
		"length must be between 4 and 11",
		"unknown command :bogus",
		"ward  W.RD",
		"The answer was WORD. (Enter to play again)",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	s := r.Session()
	if s.Phase != game.Playing || s.WordLength != 4 || len(s.Guesses) != 0 {
		t.Fatalf("expected fresh 4-letter game after enter, got %+v", s)
	}
}
