package term

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the terminal key bindings.
type KeyMap struct {
	Reset  key.Binding
	Hint   key.Binding
	Sound  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new grid")),
		Hint:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		Sound:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop drag")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Hint, k.Sound, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
