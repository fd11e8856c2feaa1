package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit     key.Binding
	RowDown  key.Binding
	RowUp    key.Binding
	SaveAs   key.Binding
	Clear    key.Binding
	Comment  key.Binding
	CopyRow  key.Binding
	OpenHelp key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	SaveAs: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save history as…"),
	),
	Clear: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "clear history"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment on selected outcome"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy value to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.SaveAs,
		k.Clear,
		k.Comment,
		k.CopyRow,
		k.OpenHelp,
	}
}
