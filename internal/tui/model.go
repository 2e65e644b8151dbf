// Package tui provides the Bubble Tea game interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/evilword/internal/game"
)

const suggestionLimit = 3

// Dictionary validates guesses and proposes near matches for rejected ones.
type Dictionary interface {
	game.Dictionary
	Suggest(word string, limit int) []string
}

// Model implements the Bubble Tea game UI.
type Model struct {
	engine  *game.Engine
	dict    Dictionary
	session game.Session

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a game TUI model around an already started session.
func NewModel(engine *game.Engine, dict Dictionary, session game.Session) *Model {
	return &Model{
		engine:  engine,
		dict:    dict,
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Session returns the current game state.
func (m *Model) Session() game.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.GiveUp):
			m.apply(game.GiveUp())
		case key.Matches(msg, m.keys.Enter):
			m.apply(game.Enter())
		case key.Matches(msg, m.keys.Backspace):
			m.apply(game.Backspace())
		case key.Matches(msg, m.keys.Shorter):
			m.changeLength(-1)
		case key.Matches(msg, m.keys.Longer):
			m.changeLength(1)
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				m.apply(game.Letter(r))
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) changeLength(delta int) {
	n := m.session.WordLength + delta
	if n < game.MinWordLength || n > game.MaxWordLength {
		return
	}
	m.apply(game.SetWordLength(n))
}

func (m *Model) apply(ev game.Event) {
	next, err := m.engine.Apply(m.session, ev)
	if err != nil {
		log.Warn().Err(err).Str("session", m.session.ID).Msg("failed to start session")
	}
	m.session = next
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return content
	}
	helpLine := m.help.View(m.keys)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return body + "\n" + footer
}

func (m *Model) renderBody() string {
	s := m.session
	lines := []string{titleStyle.Render(renderTitle(s)), ""}
	for _, row := range s.Rows() {
		lines = append(lines, renderRow(row, s.WordLength))
	}
	lines = append(lines, "", hintStyle.Render(truncateHint(s.Hint, m.width)))
	if suggestion := m.suggestion(); suggestion != "" {
		lines = append(lines, suggestionStyle.Render(truncateHint(suggestion, m.width)))
	}
	lines = append(lines, "", renderKeyboard(s.LetterInfo()))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) suggestion() string {
	if m.dict == nil || m.session.Hint != game.HintNotAWord {
		return ""
	}
	words := m.dict.Suggest(m.session.Input, suggestionLimit)
	if len(words) == 0 {
		return ""
	}
	return "Did you mean " + strings.Join(words, ", ") + "?"
}
