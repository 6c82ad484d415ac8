package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit   key.Binding
	complete key.Binding
	prev     key.Binding
	next     key.Binding
	dismiss  key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "history"),
		),
		next: key.NewBinding(
			key.WithKeys("down"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide suggestions"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.complete, k.prev, k.pageUp, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.complete, k.dismiss},
		{k.prev, k.pageUp, k.quit},
	}
}
