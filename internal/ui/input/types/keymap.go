package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the consuming environment. The
// navigator itself binds nothing; this is the integrator's choice of keys.
type KeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	Inner      key.Binding
	Outer      key.Binding
	ToggleFold key.Binding
	ReadEntry  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next heading"),
		),
		Backward: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous heading"),
		),
		Inner: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/→", "descend"),
		),
		Outer: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "ascend"),
		),
		ToggleFold: key.NewBinding(
			key.WithKeys("tab", "z"),
			key.WithHelp("tab", "toggle bodies"),
		),
		ReadEntry: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "read zettel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Backward, k.Inner, k.Outer, k.ToggleFold, k.ReadEntry, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Inner, k.Outer},
		{k.ToggleFold, k.ReadEntry, k.Help, k.Quit},
	}
}
