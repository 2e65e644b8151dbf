package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter     key.Binding
	Backspace key.Binding
	Shorter   key.Binding
	Longer    key.Binding
	GiveUp    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete")),
		Shorter:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter")),
		Longer:    key.NewBinding(key.WithKeys("=", "+"), key.WithHelp("=", "longer")),
		GiveUp:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "give up")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Backspace, k.Shorter, k.Longer, k.GiveUp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
