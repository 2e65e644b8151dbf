package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/evilword/internal/clue"
	"github.com/verte-zerg/evilword/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

var (
	baseTile        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	correctTile     = baseTile.Background(lipgloss.Color("#538D4E"))
	elsewhereTile   = baseTile.Background(lipgloss.Color("#B59F3B"))
	absentTile      = baseTile.Background(lipgloss.Color("#3A3A3C"))
	editingTile     = baseTile.Background(lipgloss.Color("#565758"))
	emptyTile       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3C"))
	unusedKey       = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

func clueStyle(c clue.Clue) lipgloss.Style {
	switch c {
	case clue.Correct:
		return correctTile
	case clue.Elsewhere:
		return elsewhereTile
	default:
		return absentTile
	}
}

func tile(letter byte) string {
	return " " + strings.ToUpper(string(letter)) + " "
}

func renderTitle(s game.Session) string {
	if s.Over() {
		return fmt.Sprintf("evilword · %d letters", s.WordLength)
	}
	return fmt.Sprintf("evilword · %d letters · %d guesses left", s.WordLength, s.GuessesLeft())
}

func renderRow(row game.Row, wordLength int) string {
	cells := make([]string, 0, wordLength)
	for i := 0; i < wordLength; i++ {
		switch {
		case i >= len(row.Letters):
			cells = append(cells, emptyTile.Render(" · "))
		case row.Kind == game.RowLocked:
			cells = append(cells, clueStyle(row.Letters[i].Clue).Render(tile(row.Letters[i].Letter)))
		default:
			cells = append(cells, editingTile.Render(tile(row.Letters[i].Letter)))
		}
	}
	return strings.Join(cells, " ")
}

func renderKeyboard(info map[byte]clue.Clue) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for i := 0; i < len(row); i++ {
			keys = append(keys, renderKey(row[i], info))
		}
		lines = append(lines, strings.Join(keys, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderKey(letter byte, info map[byte]clue.Clue) string {
	c, seen := info[letter]
	if !seen {
		return unusedKey.Render(tile(letter))
	}
	return clueStyle(c).Render(tile(letter))
}

func truncateHint(hint string, width int) string {
	if width <= 0 || runewidth.StringWidth(hint) <= width {
		return hint
	}
	return runewidth.Truncate(hint, width, "…")
}
