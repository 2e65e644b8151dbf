package game

import (
	"strings"
	"unicode"
)

// EventKind identifies an input to the state machine.
type EventKind int

const (
	// EventLetter appends a letter to the current input.
	EventLetter EventKind = iota
	// EventBackspace drops the last letter of the current input.
	EventBackspace
	// EventEnter commits the current input, or starts a new game once finished.
	EventEnter
	// EventGiveUp ends the game and reveals the target.
	EventGiveUp
	// EventSetWordLength starts a new game with a different word length.
	EventSetWordLength
)

// Event is a single key token or UI action.
type Event struct {
	Kind   EventKind
	Letter byte
	Length int
}

// Letter returns a letter event. Upper case letters are folded; anything outside
// a-z yields an event that Apply ignores.
func Letter(r rune) Event {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return Event{Kind: EventLetter}
	}
	return Event{Kind: EventLetter, Letter: byte(r)}
}

// Backspace returns a backspace event.
func Backspace() Event { return Event{Kind: EventBackspace} }

// Enter returns an enter event.
func Enter() Event { return Event{Kind: EventEnter} }

// GiveUp returns a give-up event.
func GiveUp() Event { return Event{Kind: EventGiveUp} }

// SetWordLength returns a word length change event.
func SetWordLength(n int) Event { return Event{Kind: EventSetWordLength, Length: n} }

// ParseKey maps an abstract key token ("a".."z", "enter", "backspace") to an event.
func ParseKey(key string) (Event, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "enter", "return":
		return Enter(), true
	case "backspace", "delete":
		return Backspace(), true
	}
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return Letter(rune(key[0])), true
	}
	return Event{}, false
}

// Events expands a word into letter events followed by Enter.
func Events(word string) []Event {
	out := make([]Event, 0, len(word)+1)
	for _, r := range word {
		out = append(out, Letter(r))
	}
	return append(out, Enter())
}
