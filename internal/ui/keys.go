package ui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeyMap defines keys available in normal mode with no overlay.
type GlobalKeyMap struct {
	Quit       key.Binding
	ToggleEdit key.Binding
	Refresh    key.Binding
	About      key.Binding
	Calculator key.Binding
	NextTab    key.Binding
	OpenDetail key.Binding
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

var GlobalKeys = GlobalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ToggleEdit: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "edit mode"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh feed"),
	),
	About: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "about"),
	),
	Calculator: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "calculator"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch tab"),
	),
	OpenDetail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "event detail"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "last"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
}

// DetailKeyMap defines keys for the event detail overlay.
type DetailKeyMap struct {
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

var DetailKeys = DetailKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc/q", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "bottom"),
	),
}

// OverlayCloseKeys dismisses the about and calculator overlays.
var OverlayCloseKeys = key.NewBinding(
	key.WithKeys("esc", "q"),
	key.WithHelp("Esc/q", "close"),
)

// ComposeKeyMap defines keys for editing mode.
type ComposeKeyMap struct {
	Send key.Binding
	Exit key.Binding
}

var ComposeKeys = ComposeKeyMap{
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "send"),
	),
	Exit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "normal mode"),
	),
}
