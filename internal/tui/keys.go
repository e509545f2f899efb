package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Today      key.Binding
	NextTarget key.Binding
	PrevTarget key.Binding
	Open       key.Binding
	Add        key.Binding
	Help       key.Binding
	Quit       key.Binding

	Edit   key.Binding
	Delete key.Binding
	Close  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth:  key.NewBinding(key.WithKeys("[", "p", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth:  key.NewBinding(key.WithKeys("]", "n", "pgdown"), key.WithHelp("]", "next month")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextTarget: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next event")),
		PrevTarget: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev event")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Close:  key.NewBinding(key.WithKeys("esc", "q", "c", "ctrl+g"), key.WithHelp("esc", "close")),
	}
}

// footerHelp is the one-line hint shown under the grid.
func (k keyMap) footerHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Today, k.Add, k.Open, k.NextTarget, k.Help, k.Quit}
}
