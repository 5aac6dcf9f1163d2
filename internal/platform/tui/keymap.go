package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the step debugger.
type KeyMap struct {
	Step   key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Toggle, k.Reset},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default debugger key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "n"),
			key.WithHelp("space/n", "step"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", "run/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
