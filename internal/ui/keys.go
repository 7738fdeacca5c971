package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the reserved bindings. Everything else on the keyboard is
// free for song shortcuts, which is why quit hides behind ctrl+c.
type keyMap struct {
	Quit   key.Binding
	Stop   key.Binding
	Random key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Random: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "random"),
		),
	}
}
