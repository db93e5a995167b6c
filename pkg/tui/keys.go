package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the demo's key bindings.
type KeyMap struct {
	ToggleToolbar key.Binding
	TogglePanel   key.Binding
	ToggleMenuBar key.Binding
	Collapse      key.Binding
	Grow          key.Binding
	Shrink        key.Binding
	Tooltip       key.Binding
	ContextMenu   key.Binding
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Toast         key.Binding
	Dismiss       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleToolbar: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toolbar")),
		TogglePanel:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "panel")),
		ToggleMenuBar: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu bar")),
		Collapse:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse")),
		Grow:          key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow panel")),
		Shrink:        key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink panel")),
		Tooltip:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "tooltip")),
		ContextMenu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "context menu")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toast:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notify")),
		Dismiss:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Help:          key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleToolbar, k.TogglePanel, k.Tooltip, k.ContextMenu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleToolbar, k.TogglePanel, k.ToggleMenuBar, k.Collapse},
		{k.Grow, k.Shrink, k.Tooltip, k.ContextMenu},
		{k.Up, k.Down, k.Select, k.Toast, k.Dismiss},
		{k.Help, k.Quit},
	}
}
