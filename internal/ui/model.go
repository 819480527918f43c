package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/data/dispatcher"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/theme"
	"github.com/atomicstack/gridmenu/internal/ui/command"
)

const gridID = "grid"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// flushMsg runs the work the context menu deferred to the next turn.
type flushMsg struct{}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Menu holds the grid-level context menu settings and seed items.
	Menu contextmenu.Options
	// Bus receives action outcomes. A nil bus gets a fresh one.
	Bus *command.Bus
	// Watcher streams reloads of the source table.
	Watcher     *backend.Watcher
	Fingerprint string
}

// Model implements the Bubble Tea model for the grid and its context menu.
type Model struct {
	grid    *grid.Grid
	menu    *contextmenu.Context
	signals *contextmenu.Bus
	queue   *contextmenu.Queue
	popup   *Popup
	zones   *zone.Manager

	bus        *command.Bus
	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
	backendErr string

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	keys         keyMap
	help         help.Model
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
	unsub    []func()
}

// NewModel initialises the UI over table with the context menu attached to
// its grid.
func NewModel(table *grid.Table, opts Options) *Model {
	if table == nil {
		table = &grid.Table{}
	}
	if !hasToggleColumn(table) {
		table.AddToggleColumn()
	}
	bus := opts.Bus
	if bus == nil {
		bus = command.New()
	}
	m := &Model{
		grid:       grid.New(gridID, table, grid.Point{X: 0, Y: titleRows}),
		signals:    contextmenu.NewBus(),
		queue:      &contextmenu.Queue{},
		zones:      zone.New(),
		bus:        bus,
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.dispatcher = dispatcher.New(m, opts.Fingerprint)
	m.menu = contextmenu.Attach(m.grid, opts.Menu, contextmenu.Deps{
		Geometry:  m.grid,
		Signals:   m.signals,
		Region:    contextmenu.RegionFunc(m.popupContains),
		Scheduler: m.queue,
	})
	m.popup = NewPopup(m.menu, m.zones)
	m.unsub = append(m.unsub,
		m.menu.OnShow(m.handleMenuShown),
		m.menu.OnHide(m.handleMenuHidden),
	)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncLayout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	var cmd tea.Cmd
	if m.filterCursor, cmd = m.filterCursor.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(flushMsg{}):          m.handleFlushMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate settles the menu after a message: the open cell must still
// exist, the popup follows the menu state and deferred notifications get a
// turn of their own.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.closeStaleMenu()
	m.syncPopup()
	if cmd := m.bus.Drain(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.queue.Pending() {
		cmds = append(cmds, func() tea.Msg { return flushMsg{} })
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleFlushMsg(tea.Msg) tea.Cmd {
	m.queue.Flush()
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.signals.Blur()
	return nil
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	for _, r := range res.Results {
		if r.Err != nil {
			m.errMsg = r.Err.Error()
			continue
		}
		m.errMsg = ""
		if r.Info != "" {
			m.setInfo(r.Info)
		}
	}
	return nil
}

func (m *Model) handleMenuShown(evt contextmenu.ShowEvent) {
	if m.verbose {
		m.setInfo(fmt.Sprintf("menu for %v / %v", evt.Row, evt.Column))
	}
}

func (m *Model) handleMenuHidden(evt contextmenu.HideEvent) {
	if m.verbose {
		m.setInfo(fmt.Sprintf("menu closed for %v / %v", evt.Row, evt.Column))
	}
}

// SetTable swaps in a reloaded table. It implements dispatcher.TableSink.
func (m *Model) SetTable(t *grid.Table) {
	if t == nil {
		return
	}
	if !hasToggleColumn(t) {
		t.AddToggleColumn()
	}
	m.grid.SetTable(t)
	m.syncLayout()
}

// closeStaleMenu closes a menu whose row or column left the table.
func (m *Model) closeStaleMenu() {
	state := m.menu.State()
	if !state.IsOpen() {
		return
	}
	row, _ := state.Row.(*grid.Row)
	col, _ := state.Column.(*grid.Column)
	table := m.grid.Table()
	if table.IndexOf(row) >= 0 && containsColumn(table.VisibleColumns(), col) {
		return
	}
	m.menu.Controller().RequestClose(false)
}

func (m *Model) popupContains(x, y int) bool {
	return m.popup != nil && m.popup.Contains(x, y)
}

// Close detaches the context menu. The model must not be used afterwards.
func (m *Model) Close() {
	for _, off := range m.unsub {
		off()
	}
	m.unsub = nil
	m.menu.Destroy()
	m.zones.Close()
	if m.backend != nil {
		m.backend.Stop()
	}
}

// Grid exposes the host grid.
func (m *Model) Grid() *grid.Grid {
	return m.grid
}

// Menu exposes the context menu attached to the grid.
func (m *Model) Menu() *contextmenu.Context {
	return m.menu
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func hasToggleColumn(t *grid.Table) bool {
	for _, col := range t.Columns {
		if col.Toggle {
			return true
		}
	}
	return false
}

func containsColumn(cols []*grid.Column, col *grid.Column) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}
	return false
}
