package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the browser keybindings.
type keyMap struct {
	Run        key.Binding
	ToggleNote key.Binding
	Copy       key.Binding
	FocusNext  key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run demo"),
		),
		ToggleNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle notes"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy notes"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.ToggleNote, k.Copy, k.FocusNext, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
