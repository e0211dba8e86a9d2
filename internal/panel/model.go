// Package panel implements the tab switcher: a grid of open tabs or a list of
// visited pages, with a button bar, drawn over the page beneath it.
package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/logx"
	"github.com/jask/tabdeck/internal/resource"
)

// DefaultLongPress is used when Options.LongPress is zero.
const DefaultLongPress = 500 * time.Millisecond

// Callbacks are the host's reactions to gestures. Any of them may be nil.
type Callbacks struct {
	OnTabSelect        func(browser.TabSummary) tea.Cmd
	OnTabClose         func(browser.TabSummary) tea.Cmd
	OnTabIconClick     func() tea.Cmd
	OnHistoryIconClick func() tea.Cmd
	OnHistoryOpen      func(browser.HistoryEntry) tea.Cmd
	OnHistoryLongPress func(browser.HistoryEntry) tea.Cmd
	OnAddTab           func() tea.Cmd
	OnAddIncognitoTab  func() tea.Cmd
	OnNewWindow        func() tea.Cmd
	OnDeleteAll        func() tea.Cmd
	OnClosePanel       func() tea.Cmd
}

// TabsMsg replaces the panel's tab list.
type TabsMsg struct {
	Tabs []browser.TabSummary
}

// HistoryMsg replaces the history list, or reports why it could not be read.
type HistoryMsg struct {
	Entries []browser.HistoryEntry
	Err     error
}

type longPressMsg struct {
	seq int
}

type Options struct {
	State     DisplayState
	LongPress time.Duration
	Keys      *core.KeyRegistry
	Resolver  resource.Resolver
	Previews  *PreviewCache
	Callbacks Callbacks
	Logger    pslog.Logger
	Now       func() time.Time
}

type Model struct {
	state   DisplayState
	tabs    []browser.TabSummary
	history []browser.HistoryEntry
	modes   [2]modeState

	barFocus  bool
	barCursor int
	barOffset int // buttons hidden past the right edge

	pressed   *press
	pressSeq  int
	longPress time.Duration

	width  int
	height int

	cb       Callbacks
	keys     *core.KeyRegistry
	res      resource.Resolver
	previews *PreviewCache
	log      pslog.Logger
	now      func() time.Time
}

func New(opts Options) *Model {
	m := &Model{
		state:     opts.State,
		longPress: opts.LongPress,
		cb:        opts.Callbacks,
		keys:      opts.Keys,
		res:       opts.Resolver,
		previews:  opts.Previews,
		log:       opts.Logger,
		now:       opts.Now,
		width:     80,
		height:    24,
	}
	if m.longPress <= 0 {
		m.longPress = DefaultLongPress
	}
	if m.keys == nil {
		m.keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if m.res == nil {
		m.res = idResolver{}
	}
	if m.log == nil {
		m.log = logx.Discard()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.barCursor = m.buttonIndex(ButtonTabs)
	return m
}

func (m *Model) State() DisplayState { return m.state }

// SetState applies new flags, keeping the bar cursor on the same button.
func (m *Model) SetState(s DisplayState) {
	m.setHistoryMode(s.HistoryMode)
	m.state = s
	m.clampScroll()
}

func (m *Model) ToggleHistoryMode() { m.setHistoryMode(!m.state.HistoryMode) }

func (m *Model) ToggleReversed() { m.state.Reversed = !m.state.Reversed }

func (m *Model) Tabs() []browser.TabSummary {
	return append([]browser.TabSummary(nil), m.tabs...)
}

func (m *Model) SetTabs(tabs []browser.TabSummary) {
	m.tabs = append([]browser.TabSummary(nil), tabs...)
	m.modes[ContentTabs].clamp(len(m.tabs))
	m.clampScroll()
}

// RemoveTab drops tab from the local list. Absent tabs are ignored.
func (m *Model) RemoveTab(tab browser.TabSummary) bool {
	var removed bool
	m.tabs, removed = removeTab(m.tabs, tab)
	if removed {
		m.modes[ContentTabs].clamp(len(m.tabs))
		m.clampScroll()
	}
	return removed
}

func (m *Model) History() []browser.HistoryEntry {
	return append([]browser.HistoryEntry(nil), m.history...)
}

func (m *Model) SetHistory(entries []browser.HistoryEntry) {
	m.history = append([]browser.HistoryEntry(nil), entries...)
	m.modes[ContentHistory].clamp(len(m.history))
	m.clampScroll()
}

// Cursor is the keyboard position in the current content view.
func (m *Model) Cursor() int { return m.modes[m.state.Content()].cursor }

func (m *Model) BarFocused() bool { return m.barFocus }

func (m *Model) Title() string {
	if m.state.HistoryMode {
		return m.res.Text(resource.PanelHistory)
	}
	return m.res.Text(resource.PanelTabs)
}

func (m *Model) Scope() string {
	switch {
	case m.barFocus:
		return core.ScopePanelBar
	case m.state.HistoryMode:
		return core.ScopePanelHistory
	}
	return core.ScopePanelTabs
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(1, width), max(1, height)
	m.clampScroll()
	m.barOffset = min(m.barOffset, m.maxBarOffset(m.width))
}

func (m *Model) Layered() bool { return true }

func (m *Model) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case TabsMsg:
		m.SetTabs(msg.Tabs)
	case HistoryMsg:
		if msg.Err != nil {
			m.log.Error("history load failed", "err", msg.Err)
			return m, core.ErrorCmd(msg.Err), false
		}
		m.SetHistory(msg.Entries)
	case core.ConfigReloadedMsg:
		if msg.Err == nil {
			m.state.Reversed = msg.Config.Panel.Reversed
			m.state.TwoColumns = msg.Config.Panel.TwoColumns
			if d := msg.Config.Panel.LongPress(); d > 0 {
				m.longPress = d
			}
			m.clampScroll()
		}
	case longPressMsg:
		cmd, pop := m.onLongPressTimer(msg)
		return m, cmd, pop
	case tea.MouseMsg:
		cmd, pop := m.handleMouse(msg)
		return m, cmd, pop
	case tea.KeyMsg:
		cmd, pop := m.handleKey(msg)
		return m, cmd, pop
	}
	return m, nil, false
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	scope := m.Scope()
	k := m.keys
	switch {
	case k.IsAction(msg, "close", scope):
		return m.closePanel()
	case k.IsAction(msg, "focus-bar", scope):
		m.barFocus = !m.barFocus
		m.pressed = nil
		if m.barFocus {
			m.ensureButtonVisible(m.barCursor)
		}
	case k.IsAction(msg, "bar-scroll-left", scope):
		m.scrollBar(1)
	case k.IsAction(msg, "bar-scroll-right", scope):
		m.scrollBar(-1)
	case m.barFocus:
		return m.handleBarKey(msg, scope)
	default:
		return m.handleContentKey(msg, scope)
	}
	return nil, false
}

func (m *Model) handleBarKey(msg tea.KeyMsg, scope string) (tea.Cmd, bool) {
	buttons := BarButtons(m.state.HistoryMode)
	k := m.keys
	switch {
	case k.IsAction(msg, "left", scope):
		m.barCursor = max(0, m.barCursor-1)
		m.ensureButtonVisible(m.barCursor)
	case k.IsAction(msg, "right", scope):
		m.barCursor = min(len(buttons)-1, m.barCursor+1)
		m.ensureButtonVisible(m.barCursor)
	case k.IsAction(msg, "select", scope):
		return m.pressButton(buttons[m.barCursor], false)
	case k.IsAction(msg, "long-press", scope):
		return m.pressButton(buttons[m.barCursor], true)
	}
	return nil, false
}

func (m *Model) handleContentKey(msg tea.KeyMsg, scope string) (tea.Cmd, bool) {
	kind := m.state.Content()
	n := m.count(kind)
	k := m.keys
	switch {
	case k.IsAction(msg, "up", scope):
		m.moveRows(-1)
	case k.IsAction(msg, "down", scope):
		m.moveRows(1)
	case k.IsAction(msg, "left", scope):
		m.moveCursor(-1)
	case k.IsAction(msg, "right", scope):
		m.moveCursor(1)
	case n == 0:
		return nil, false
	case k.IsAction(msg, "select", scope):
		return m.activate(m.cursorTarget(), false)
	case k.IsAction(msg, "long-press", scope):
		return m.activate(m.cursorTarget(), true)
	case k.IsAction(msg, "close-tab", scope) && kind == ContentTabs:
		return m.closeTab(m.modes[kind].cursor), false
	}
	return nil, false
}

func (m *Model) cursorTarget() target {
	if m.state.HistoryMode {
		return target{kind: targetHistory, index: m.modes[ContentHistory].cursor}
	}
	return target{kind: targetTab, index: m.modes[ContentTabs].cursor}
}

// activate performs the tap or long press for t.
func (m *Model) activate(t target, long bool) (tea.Cmd, bool) {
	switch t.kind {
	case targetBackground:
		return m.closePanel()
	case targetTab:
		if t.index >= len(m.tabs) {
			return nil, false
		}
		if long {
			return m.closeTab(t.index), false
		}
		tab := m.tabs[t.index]
		logx.WithTab(m.log, tab).Debug("tab selected")
		return call1(m.cb.OnTabSelect, tab), false
	case targetTabClose:
		return m.closeTab(t.index), false
	case targetHistory:
		if t.index >= len(m.history) {
			return nil, false
		}
		e := m.history[t.index]
		if long {
			return call1(m.cb.OnHistoryLongPress, e), false
		}
		return call1(m.cb.OnHistoryOpen, e), false
	case targetButton:
		return m.pressButton(t.button, long)
	}
	return nil, false
}

// closeTab removes the tab locally first, then tells the host.
func (m *Model) closeTab(i int) tea.Cmd {
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	tab := m.tabs[i]
	m.RemoveTab(tab)
	logx.WithTab(m.log, tab).Info("tab closed", "remaining", len(m.tabs))
	return call1(m.cb.OnTabClose, tab)
}

func (m *Model) pressButton(b Button, long bool) (tea.Cmd, bool) {
	if long {
		if b == ButtonAddTab {
			return call0(m.cb.OnNewWindow), false
		}
		return nil, false
	}
	switch b {
	case ButtonDeleteAll:
		return call0(m.cb.OnDeleteAll), false
	case ButtonIncognito:
		return call0(m.cb.OnAddIncognitoTab), false
	case ButtonHistory:
		m.ToggleHistoryMode()
		return call0(m.cb.OnHistoryIconClick), false
	case ButtonTabs:
		m.setHistoryMode(false)
		return call0(m.cb.OnTabIconClick), false
	case ButtonAddTab:
		return call0(m.cb.OnAddTab), false
	case ButtonClose:
		return m.closePanel()
	}
	return nil, false
}

func (m *Model) closePanel() (tea.Cmd, bool) {
	m.pressed = nil
	return call0(m.cb.OnClosePanel), true
}

// setHistoryMode switches content; the bar cursor follows its button since
// delete-all appears or disappears in front of it.
func (m *Model) setHistoryMode(on bool) {
	if m.state.HistoryMode == on {
		return
	}
	current := BarButtons(m.state.HistoryMode)[m.barCursor]
	m.state.HistoryMode = on
	m.barCursor = m.buttonIndex(current)
	m.pressed = nil
	m.barOffset = min(m.barOffset, m.maxBarOffset(m.width))
}

func (m *Model) buttonIndex(b Button) int {
	for i, x := range BarButtons(m.state.HistoryMode) {
		if x == b {
			return i
		}
	}
	return 0
}

func (m *Model) count(kind ContentKind) int {
	if kind == ContentHistory {
		return len(m.history)
	}
	return len(m.tabs)
}

func (m *Model) grid(kind ContentKind) Grid {
	return Grid{Count: m.count(kind), Columns: m.state.Columns(kind), Reversed: m.state.Reversed}
}

// moveRows moves the cursor by screen rows. Logical row 0 sits at the bottom
// of a reversed grid, so "up" walks forward through the list there.
func (m *Model) moveRows(delta int) {
	kind := m.state.Content()
	g := m.grid(kind)
	if g.Count == 0 {
		return
	}
	if g.Reversed {
		delta = -delta
	}
	st := &m.modes[kind]
	next := st.cursor + delta*g.cols()
	switch {
	case next < 0:
		return
	case next >= g.Count:
		row, _ := g.Position(st.cursor)
		if row+1 >= g.Rows() {
			return
		}
		next = g.Count - 1
	}
	st.cursor = next
	m.ensureVisible(kind)
}

func (m *Model) moveCursor(delta int) {
	kind := m.state.Content()
	n := m.count(kind)
	if n == 0 {
		return
	}
	st := &m.modes[kind]
	st.cursor = min(n-1, max(0, st.cursor+delta))
	m.ensureVisible(kind)
}

func (m *Model) ensureVisible(kind ContentKind) {
	f := m.frameFor(kind, m.width, m.height)
	st := &m.modes[kind]
	row, _ := f.grid.Position(st.cursor)
	if row < st.scroll {
		st.scroll = row
	}
	if row >= st.scroll+f.visible {
		st.scroll = row - f.visible + 1
	}
	m.clampScroll()
}

// scrollContent moves the viewport by screen rows without touching the cursor.
func (m *Model) scrollContent(delta int) {
	kind := m.state.Content()
	if m.state.Reversed {
		delta = -delta
	}
	m.modes[kind].scroll += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	for _, kind := range []ContentKind{ContentTabs, ContentHistory} {
		f := m.frameFor(kind, m.width, m.height)
		st := &m.modes[kind]
		st.scroll = min(st.scroll, max(0, f.grid.Rows()-f.visible))
		st.scroll = max(0, st.scroll)
	}
}

func call0(fn func() tea.Cmd) tea.Cmd {
	if fn == nil {
		return nil
	}
	return fn()
}

func call1[T any](fn func(T) tea.Cmd, v T) tea.Cmd {
	if fn == nil {
		return nil
	}
	return fn(v)
}

type idResolver struct{}

func (idResolver) Text(id resource.StringID) string { return string(id) }
func (idResolver) Icon(id resource.IconID) string   { return resource.Glyph(id) }
