package monthpicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings used by the picker. It satisfies
// help.KeyMap so hosts can render it with the bubbles help component.
type KeyMap struct {
	Open     key.Binding
	Close    key.Binding
	Select   key.Binding
	PrevYear key.Binding
	NextYear key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next year"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→/↑/↓", "move"),
		),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ShortHelp returns the bindings shown in the popover hint line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.PrevYear, k.NextYear, k.Select, k.Close}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevYear, k.NextYear},
		{k.Open, k.Select, k.Close},
	}
}
