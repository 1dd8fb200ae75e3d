// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the theme preview.
type KeyMap struct {
	// Theme
	Toggle    key.Binding
	CycleMode key.Binding
	Preset    key.Binding
	EditColor key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Theme
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle light/dark"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle theme mode"),
		),
		Preset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next preset"),
		),
		EditColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "edit accent color"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.CycleMode, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.CycleMode, k.Preset, k.EditColor}, // Theme
		{k.Help, k.Quit},                               // General
	}
}
