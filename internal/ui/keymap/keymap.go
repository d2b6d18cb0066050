// Package keymap holds the key bindings shared by the input modes and the
// help view.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the search widget.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	Open         key.Binding
	Clear        key.Binding
	Settings     key.Binding
	Browse       key.Binding
	Search       key.Binding
	ToggleRow    key.Binding
	ToggleFiles  key.Binding
	TogglePeople key.Binding
	ToggleChats  key.Binding
	ToggleLists  key.Binding
	Close        key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// Default returns the default keybindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "settings"),
		),
		Browse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "browse results"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "i", "esc"),
			key.WithHelp("/", "search"),
		),
		ToggleRow: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		ToggleFiles: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "files"),
		),
		TogglePeople: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "people"),
		),
		ToggleChats: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "chats"),
		),
		ToggleLists: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "lists"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "s", "ctrl+s"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Down, k.Open, k.Settings, k.Help, k.ForceQuit}
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Open, k.Clear, k.Browse, k.Search},
		{k.Settings, k.ToggleFiles, k.TogglePeople, k.ToggleChats, k.ToggleLists},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
