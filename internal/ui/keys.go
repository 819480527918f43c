package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the grid bindings and the popup bindings. Popup bindings
// avoid printable keys, which feed the popup filter.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Menu     key.Binding
	Quit     key.Binding
	Abort    key.Binding

	PopupUp     key.Binding
	PopupDown   key.Binding
	PopupHome   key.Binding
	PopupEnd    key.Binding
	PopupPgUp   key.Binding
	PopupPgDown key.Binding
	Invoke      key.Binding
	Close       key.Binding
	FilterLeft  key.Binding
	FilterRight key.Binding
	Backspace   key.Binding
	DeleteWord  key.Binding
	ClearFilter key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Menu:     key.NewBinding(key.WithKeys("m", "shift+f10"), key.WithHelp("m", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Abort:    key.NewBinding(key.WithKeys("ctrl+c")),

		PopupUp:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		PopupDown:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PopupHome:   key.NewBinding(key.WithKeys("home")),
		PopupEnd:    key.NewBinding(key.WithKeys("end")),
		PopupPgUp:   key.NewBinding(key.WithKeys("pgup")),
		PopupPgDown: key.NewBinding(key.WithKeys("pgdown")),
		Invoke:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Close:       key.NewBinding(key.WithKeys(dismissKey), key.WithHelp("esc", "close")),
		FilterLeft:  key.NewBinding(key.WithKeys("left")),
		FilterRight: key.NewBinding(key.WithKeys("right")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		DeleteWord:  key.NewBinding(key.WithKeys("ctrl+w")),
		ClearFilter: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear filter")),
	}
}

// dismissKey is the key the context menu watcher treats as dismissal.
const dismissKey = "esc"

type gridHelp keyMap

func (k gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Menu, k.Quit}
}

func (k gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Home, k.End, k.PageUp, k.PageDown}, {k.Menu, k.Quit}}
}

type popupHelp keyMap

func (k popupHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.PopupUp, k.PopupDown, k.Invoke, k.Close, k.ClearFilter}
}

func (k popupHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
