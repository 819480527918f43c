package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

const wheelStep = 3

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	inPopup := m.popup.Contains(ev.X, ev.Y)
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if inPopup {
			m.notePopupCursor(m.popup.List().MoveCursorUp())
		} else {
			m.scrollGrid(-wheelStep)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if inPopup {
			m.notePopupCursor(m.popup.List().MoveCursorDown())
		} else {
			m.scrollGrid(wheelStep)
		}
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}

	if inPopup {
		m.signals.PointerDown(ev.X, ev.Y)
		if ev.Button == tea.MouseButtonLeft {
			m.clickPopup(ev.X, ev.Y)
		}
		return nil
	}

	col, row, hit := m.grid.HitTest(ev.X, ev.Y)
	if ev.Button == tea.MouseButtonRight && hit {
		m.rightPressCell(ev, col, row)
		return nil
	}

	before := m.menu.State()
	m.signals.PointerDown(ev.X, ev.Y)
	if ev.Button != tea.MouseButtonLeft || !hit {
		return nil
	}
	m.grid.SetCursor(col, row)
	if !col.Toggle {
		return nil
	}
	// the press already dismissed this cell's menu; leave it closed
	if before.IsOpen() && before.Column == contextmenu.Column(col) && before.Row == contextmenu.Row(row) {
		return nil
	}
	t := m.cellTrigger(col, row, 0)
	opened := m.menu.Toggle(t)
	events.UI.Trigger("toggle", ev.X, ev.Y, !opened)
	return nil
}

// rightPressCell hands a secondary press on a cell to the menu. The press is
// the trigger, so it is not published as a pointer-down: the same cell stays
// open and another cell supersedes. When the press falls through to the grid
// an open menu is closed like on any other press.
func (m *Model) rightPressCell(ev tea.MouseMsg, col *grid.Column, row *grid.Row) {
	t := m.cellTrigger(col, row, modifiersOf(ev))
	passThrough := m.menu.HandleContextMenu(t)
	events.UI.Trigger("pointer", ev.X, ev.Y, passThrough)
	if !passThrough {
		return
	}
	if m.menu.Controller().RequestClose(false) {
		events.Dismiss.Pointer(ev.X, ev.Y)
	}
	m.grid.SetCursor(col, row)
}

// scrollGrid moves the grid by delta rows. An open menu would be left
// pointing at a cell that scrolled away, so it closes first.
func (m *Model) scrollGrid(delta int) {
	if m.menu.Controller().RequestClose(false) {
		events.Dismiss.Scroll(delta)
	}
	if m.grid.MoveCursor(delta, 0) {
		row, col := m.grid.Cursor()
		events.UI.GridCursor(row, col)
	}
}

func (m *Model) clickPopup(x, y int) {
	item := m.popup.ItemAt(x, y)
	if item == nil {
		return
	}
	list := m.popup.List()
	if list.SetCursor(list.IndexOf(item)) {
		events.UI.MenuCursor(list.Cursor)
	}
	m.invokeItem(item)
}

// cellTrigger builds a trigger for a cell. Missing halves stay nil
// interfaces so the gate sees them as absent.
func (m *Model) cellTrigger(col *grid.Column, row *grid.Row, mods contextmenu.Modifiers) contextmenu.Trigger {
	t := contextmenu.Trigger{Modifiers: mods}
	if col != nil {
		t.Column = col
	}
	if row != nil {
		t.Row = row
	}
	if col != nil && row != nil {
		if rect, ok := m.grid.CellBounds(col, row); ok {
			t.Cell = rect
		}
	}
	return t
}

func modifiersOf(ev tea.MouseMsg) contextmenu.Modifiers {
	var mods contextmenu.Modifiers
	if ev.Shift {
		mods |= contextmenu.ModShift
	}
	if ev.Ctrl {
		mods |= contextmenu.ModCtrl
	}
	if ev.Alt {
		mods |= contextmenu.ModAlt
	}
	return mods
}
