package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding
	Counters   key.Binding
	Countries  key.Binding
	Statistics key.Binding
	About      key.Binding
	Search     key.Binding
	Accept     key.Binding
	Escape     key.Binding
	Region     key.Binding
	Up         key.Binding
	Down       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next screen"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous screen"),
		),
		Counters: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "counters"),
		),
		Countries: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "countries"),
		),
		Statistics: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "statistics"),
		),
		About: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "about"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Region: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle region"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScreen, k.Search, k.Region, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Counters, k.Countries, k.Statistics, k.About},
		{k.NextScreen, k.PrevScreen, k.Up, k.Down},
		{k.Search, k.Accept, k.Escape, k.Region},
		{k.Help, k.Quit},
	}
}
