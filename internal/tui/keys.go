package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the four triggers plus quit, and feeds bubbles/help.
type keyMap struct {
	Submit        key.Binding
	Reset         key.Binding
	PrependFull   key.Binding
	PrependInsert key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "draw"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		PrependFull: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "prepend, full redraw"),
		),
		PrependInsert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "prepend, insert one"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Reset, k.PrependFull, k.PrependInsert, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Reset},
		{k.PrependFull, k.PrependInsert},
		{k.Quit},
	}
}
