package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all screens.
type KeyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	Refresh       key.Binding
	Like          key.Binding // l: like/unlike the selected confession
	Up            key.Binding
	Down          key.Binding
	Home          key.Binding // 1
	Messages      key.Binding // 2
	Create        key.Binding // 3 or p: compose inline
	CreateEditor  key.Binding // P: compose via $EDITOR
	Profile       key.Binding // 4
	Submit        key.Binding
	Back          key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	SwitchMode    key.Binding // ctrl+t: login <-> register
	Toggle        key.Binding
	SignOut       key.Binding
	ToggleSidebar key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Messages: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "whispers"),
		),
		Create: key.NewBinding(
			key.WithKeys("3", "p"),
			key.WithHelp("p", "confess"),
		),
		CreateEditor: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "confess ($EDITOR)"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "profile"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "sign in / sign up"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "sign out"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sidebar"),
		),
	}
}
