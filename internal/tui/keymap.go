package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SwitchTab key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	PrevBook  key.Binding
	NextBook  key.Binding
	PriceUp   key.Binding
	PriceDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	SwitchTab: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "switch tab"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	PrevBook: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous book"),
	),
	NextBook: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next book"),
	),
	PriceUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "raise price"),
	),
	PriceDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "lower price"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.NextField, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.NextField, k.PrevField, k.Submit},
		{k.PrevBook, k.NextBook, k.PriceUp, k.PriceDown},
		{k.Help, k.Quit},
	}
}
