package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Mutator
	PushInt key.Binding
	PushNil key.Binding
	Pair    key.Binding
	Pop     key.Binding
	Dup     key.Binding
	SetHead key.Binding
	SetTail key.Binding
	Collect key.Binding

	// Commands
	Enter key.Binding
	Esc   key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slot"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first slot"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last slot"),
		),
		PushInt: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "push int"),
		),
		PushNil: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "push nil"),
		),
		Pair: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pair"),
		),
		Pop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "pop"),
		),
		Dup: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dup"),
		),
		SetHead: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "set head"),
		),
		SetTail: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set tail"),
		),
		Collect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collect"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy heap dump"),
		),
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

// ShortHelp implements help.KeyMap for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PushInt, k.Pair, k.Pop, k.Collect, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.PushInt, k.PushNil, k.Pair, k.Pop, k.Dup},
		{k.SetHead, k.SetTail, k.Collect},
		{k.Copy, k.Help, k.Quit},
	}
}
