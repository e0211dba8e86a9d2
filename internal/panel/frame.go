package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabdeck/internal/widgets"
)

const (
	tabCellHeight     = 3
	historyCellHeight = 1
	columnGap         = 1
)

// frame is the computed geometry of one panel draw.
type frame struct {
	kind     ContentKind
	grid     Grid
	cellH    int
	contentY int
	contentH int
	visible  int // logical rows that fit
	barY     int
	sepYs    []int
	top      int // first occupied row
	bottom   int // one past the last occupied row
	colX     []int
	colW     []int
}

func (m *Model) frameFor(kind ContentKind, width, height int) frame {
	f := frame{kind: kind, grid: m.grid(kind), cellH: historyCellHeight}
	if kind == ContentTabs {
		f.cellH = tabCellHeight
	}

	needed := f.grid.Rows() * f.cellH
	if f.grid.Count == 0 {
		needed = 1
	}
	avail := max(0, height-3)
	f.contentH = min(needed, avail)
	if f.contentH > f.cellH {
		f.contentH -= f.contentH % f.cellH
	}
	f.visible = max(1, f.contentH/f.cellH)

	start := 0
	if m.state.Reversed {
		start = max(0, height-(f.contentH+3))
	}
	y := start
	for _, r := range RegionOrder(m.state.Reversed) {
		switch r {
		case RegionSeparator:
			f.sepYs = append(f.sepYs, y)
			y++
		case RegionContent:
			f.contentY = y
			y += f.contentH
		case RegionBar:
			f.barY = y
			y++
		}
	}
	f.top, f.bottom = start, y

	cols := f.grid.cols()
	f.colW = widgets.SplitWidths(max(cols, width-(cols-1)*columnGap), cols, nil)
	x := 0
	for _, w := range f.colW {
		f.colX = append(f.colX, x)
		x += w + columnGap
	}
	return f
}

func (m *Model) currentFrame() frame {
	return m.frameFor(m.state.Content(), m.width, m.height)
}

type targetKind int

const (
	targetNone targetKind = iota
	targetBackground
	targetAbsorb
	targetTab
	targetTabClose
	targetHistory
	targetButton
)

// target is what lies under a pointer position.
type target struct {
	kind   targetKind
	index  int
	button Button
}

// holdable targets start a long-press timer when pressed.
func (t target) holdable() bool {
	switch t.kind {
	case targetTab, targetTabClose, targetHistory, targetButton:
		return true
	}
	return false
}

func (m *Model) hit(x, y int) target {
	f := m.currentFrame()
	switch {
	case y < f.top || y >= f.bottom:
		return target{kind: targetBackground}
	case y == f.barY:
		return m.hitBar(x)
	case y >= f.contentY && y < f.contentY+f.contentH:
		return m.hitContent(f, x, y-f.contentY)
	}
	return target{kind: targetAbsorb}
}

func (m *Model) hitContent(f frame, x, dy int) target {
	if f.grid.Count == 0 {
		return target{kind: targetBackground}
	}
	col := -1
	for i := range f.colX {
		if x >= f.colX[i] && x < f.colX[i]+f.colW[i] {
			col = i
			break
		}
	}
	if col < 0 {
		return target{kind: targetAbsorb}
	}
	row := f.grid.LogicalRow(dy/f.cellH, m.modes[f.kind].scroll, f.visible)
	idx, ok := f.grid.Index(row, col)
	if !ok {
		return target{kind: targetBackground}
	}
	if f.kind == ContentHistory {
		return target{kind: targetHistory, index: idx}
	}
	if dy%f.cellH == 1 && x == f.colX[col]+f.colW[col]-2 {
		return target{kind: targetTabClose, index: idx}
	}
	return target{kind: targetTab, index: idx}
}

// barSpan is the horizontal extent of one visible bar button.
type barSpan struct {
	index  int
	button Button
	x0, x1 int
}

func (m *Model) buttonText(b Button) string {
	return " " + m.res.Icon(b.Icon(m.state.HistoryMode)) + " " + m.res.Text(b.Label()) + " "
}

func (m *Model) buttonWidths() []int {
	buttons := BarButtons(m.state.HistoryMode)
	out := make([]int, len(buttons))
	for i, b := range buttons {
		out[i] = ansi.StringWidth(m.buttonText(b))
	}
	return out
}

// barSpans lays the visible buttons out against the right edge, skipping
// barOffset buttons from the right.
func (m *Model) barSpans(width int) []barSpan {
	buttons := BarButtons(m.state.HistoryMode)
	widths := m.buttonWidths()
	var spans []barSpan
	right := width
	for i := len(buttons) - 1 - m.barOffset; i >= 0; i-- {
		left := right - widths[i]
		if left < 0 {
			break
		}
		spans = append([]barSpan{{index: i, button: buttons[i], x0: left, x1: right}}, spans...)
		right = left
	}
	return spans
}

// maxBarOffset is the smallest offset that brings the first button into view.
func (m *Model) maxBarOffset(width int) int {
	widths := m.buttonWidths()
	n := len(widths)
	for k := 0; k < n; k++ {
		total := 0
		for _, w := range widths[:n-k] {
			total += w
		}
		if total <= width {
			return k
		}
	}
	return n - 1
}

func (m *Model) scrollBar(delta int) {
	m.barOffset = min(m.maxBarOffset(m.width), max(0, m.barOffset+delta))
}

func (m *Model) ensureButtonVisible(i int) {
	n := len(BarButtons(m.state.HistoryMode))
	if last := n - 1 - m.barOffset; i > last {
		m.barOffset = n - 1 - i
	}
	for m.barOffset < m.maxBarOffset(m.width) {
		spans := m.barSpans(m.width)
		if len(spans) > 0 && spans[0].index <= i {
			break
		}
		m.barOffset++
	}
}

func (m *Model) hitBar(x int) target {
	for _, s := range m.barSpans(m.width) {
		if x >= s.x0 && x < s.x1 {
			return target{kind: targetButton, index: s.index, button: s.button}
		}
	}
	return target{kind: targetAbsorb}
}

// press is a left button held down on a target.
type press struct {
	target target
	seq    int
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollContent(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollContent(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.pressed = nil
		t := m.hit(msg.X, msg.Y)
		if t.kind == targetTabClose {
			t.kind = targetTab
		}
		return m.activate(t, true)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		t := m.hit(msg.X, msg.Y)
		m.pressSeq++
		m.pressed = &press{target: t, seq: m.pressSeq}
		if !t.holdable() {
			return nil, false
		}
		seq := m.pressSeq
		return tea.Tick(m.longPress, func(time.Time) tea.Msg { return longPressMsg{seq: seq} }), false
	case msg.Action == tea.MouseActionRelease:
		p := m.pressed
		m.pressed = nil
		if p == nil {
			return nil, false
		}
		if t := m.hit(msg.X, msg.Y); t == p.target {
			return m.activate(t, false)
		}
	}
	return nil, false
}

// onLongPressTimer fires the long press if the same press is still held.
func (m *Model) onLongPressTimer(msg longPressMsg) (tea.Cmd, bool) {
	p := m.pressed
	if p == nil || p.seq != msg.seq {
		return nil, false
	}
	m.pressed = nil
	t := p.target
	if t.kind == targetTabClose {
		t.kind = targetTab
	}
	return m.activate(t, true)
}
