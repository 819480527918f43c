package ui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Abort) {
		return tea.Quit
	}
	wasOpen := m.menu.Controller().IsOpen()
	m.signals.KeyDown(keyMsg.String())
	if wasOpen {
		if !m.menu.Controller().IsOpen() {
			// dismissed by the watcher
			return nil
		}
		return m.handlePopupKey(keyMsg)
	}
	return m.handleGridKey(keyMsg)
}

func (m *Model) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	page := m.grid.BodyHeight()
	if page < 1 {
		page = 1
	}
	moved := false
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.openMenuAtCursor()
		return nil
	case key.Matches(msg, m.keys.Up):
		moved = m.grid.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		moved = m.grid.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		moved = m.grid.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		moved = m.grid.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.PageUp):
		moved = m.grid.MoveCursor(-page, 0)
	case key.Matches(msg, m.keys.PageDown):
		moved = m.grid.MoveCursor(page, 0)
	case key.Matches(msg, m.keys.Home):
		moved = m.grid.MoveCursor(-len(m.grid.Table().Rows), 0)
	case key.Matches(msg, m.keys.End):
		moved = m.grid.MoveCursor(len(m.grid.Table().Rows), 0)
	}
	if moved {
		m.errMsg = ""
		row, col := m.grid.Cursor()
		events.UI.GridCursor(row, col)
	}
	return nil
}

// openMenuAtCursor opens the menu for the focused cell, as the keyboard
// counterpart of the in-cell menu control.
func (m *Model) openMenuAtCursor() {
	col, row, ok := m.grid.CursorCell()
	if !ok {
		return
	}
	t := m.cellTrigger(col, row, 0)
	opened := m.menu.Toggle(t)
	events.UI.Trigger("key", t.Cell.Left, t.Cell.Top, !opened)
	if !opened && !m.menu.Controller().IsOpen() {
		m.setInfo(fmt.Sprintf("no menu for %s / %s", row, col))
	}
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	list := m.popup.List()
	switch {
	case key.Matches(msg, m.keys.Invoke):
		m.invokeSelected()
		return nil
	case key.Matches(msg, m.keys.PopupUp):
		m.notePopupCursor(list.MoveCursorUp())
		return nil
	case key.Matches(msg, m.keys.PopupDown):
		m.notePopupCursor(list.MoveCursorDown())
		return nil
	case key.Matches(msg, m.keys.PopupHome):
		m.notePopupCursor(list.MoveCursorHome())
		return nil
	case key.Matches(msg, m.keys.PopupEnd):
		m.notePopupCursor(list.MoveCursorEnd())
		return nil
	case key.Matches(msg, m.keys.PopupPgUp):
		m.notePopupCursor(list.MoveCursorPageUp(m.popup.MaxVisible()))
		return nil
	case key.Matches(msg, m.keys.PopupPgDown):
		m.notePopupCursor(list.MoveCursorPageDown(m.popup.MaxVisible()))
		return nil
	case key.Matches(msg, m.keys.FilterLeft):
		list.MoveFilterCursor(-1)
		return nil
	case key.Matches(msg, m.keys.FilterRight):
		list.MoveFilterCursor(1)
		return nil
	case key.Matches(msg, m.keys.Backspace):
		if list.DeleteFilterRuneBackward() {
			events.Filter.Backspace(list.Filter)
		}
		return nil
	case key.Matches(msg, m.keys.DeleteWord):
		if list.DeleteFilterWordBackward() {
			events.Filter.Backspace(list.Filter)
		}
		return nil
	case key.Matches(msg, m.keys.ClearFilter):
		if list.ClearFilter() {
			events.Filter.Cleared()
		}
		return nil
	}
	m.appendToFilter(msg)
	return nil
}

func (m *Model) appendToFilter(msg tea.KeyMsg) {
	var text string
	switch msg.Type {
	case tea.KeySpace:
		text = " "
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return
			}
		}
		text = string(msg.Runes)
	default:
		return
	}
	list := m.popup.List()
	if list.InsertFilterText(text) {
		events.Filter.Append(list.Filter)
	}
}

func (m *Model) notePopupCursor(moved bool) {
	if moved {
		events.UI.MenuCursor(m.popup.List().Cursor)
	}
}

// invokeSelected runs the item under the popup cursor. Inactive items stay
// visible but refuse to run.
func (m *Model) invokeSelected() {
	item := m.popup.List().Selected()
	if item == nil {
		return
	}
	m.invokeItem(item)
}

func (m *Model) invokeItem(item *contextmenu.Item) {
	dispatcher := m.menu.Dispatcher()
	if !dispatcher.IsItemActive(item) {
		events.Action.Skip(item.Title, "inactive")
		m.setInfo(fmt.Sprintf("%s is not available here", item.Title))
		return
	}
	dispatcher.InvokeOpen(item)
}
