package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	tab    key.Binding
	edit   key.Binding
	copy   key.Binding
	logout key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	tab:    key.NewBinding(key.WithKeys("tab")),
	edit:   key.NewBinding(key.WithKeys("e")),
	copy:   key.NewBinding(key.WithKeys("c")),
	logout: key.NewBinding(key.WithKeys("l")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
