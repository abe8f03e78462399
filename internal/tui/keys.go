package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit      key.Binding
	Toggle      key.Binding
	SwitchFocus key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "check")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/list")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Toggle, k.SwitchFocus}
}
