package panel

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/widgets"
)

var (
	panelBg        = lipgloss.NewStyle().Background(core.ColorBg).Foreground(core.ColorText)
	separatorStyle = lipgloss.NewStyle().Foreground(core.ColorBorder).Background(core.ColorBg)
	mutedStyle     = lipgloss.NewStyle().Foreground(core.ColorMuted)
	privateStyle   = lipgloss.NewStyle().Foreground(core.ColorPrivate)
	rowCursorStyle = lipgloss.NewStyle().Background(core.ColorSurface0)
	rowPressStyle  = lipgloss.NewStyle().Background(core.ColorSurface1)
	barStyle       = lipgloss.NewStyle().Background(core.ColorMantle).Foreground(core.ColorText)
	barActiveStyle = lipgloss.NewStyle().Background(core.ColorMantle).Foreground(core.ColorAccent).Bold(true)
	barFocusStyle  = lipgloss.NewStyle().Background(core.ColorAccent).Foreground(core.ColorBg).Bold(true)
	barPressStyle  = lipgloss.NewStyle().Background(core.ColorPressed).Foreground(core.ColorBg)
)

// View draws the occupied bands; rows outside them are empty so the page
// beneath shows through.
func (m *Model) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	f := m.frameFor(m.state.Content(), width, height)
	lines := make([]string, height)
	put := func(y int, s string) {
		if y >= 0 && y < height {
			lines[y] = s
		}
	}

	sep := separatorStyle.Render(strings.Repeat("─", width))
	for _, y := range f.sepYs {
		put(y, sep)
	}
	for i, line := range m.renderContent(f, width) {
		put(f.contentY+i, line)
	}
	put(f.barY, m.renderBar(width))
	return strings.Join(lines, "\n")
}

func (m *Model) renderContent(f frame, width int) []string {
	out := make([]string, 0, f.contentH)
	if f.contentH == 0 {
		return out
	}
	if f.grid.Count == 0 {
		msg := resource.PanelNoTabs
		if f.kind == ContentHistory {
			msg = resource.PanelNoHistory
		}
		text := mutedStyle.Render(m.res.Text(msg))
		pad := max(0, (width-ansi.StringWidth(text))/2)
		return append(out, panelBg.Render(widgets.PadRight(strings.Repeat(" ", pad)+text, width)))
	}

	st := m.modes[f.kind]
	for vr := 0; vr < f.visible && len(out) < f.contentH; vr++ {
		row := f.grid.LogicalRow(vr, st.scroll, f.visible)
		cells := make([][]string, len(f.colW))
		for col := range f.colW {
			idx, ok := f.grid.Index(row, col)
			switch {
			case !ok:
				cells[col] = blankCell(f.colW[col], f.cellH)
			case f.kind == ContentHistory:
				cells[col] = []string{m.renderHistoryRow(idx, f.colW[col])}
			default:
				cells[col] = strings.Split(m.renderTabCell(idx, f.colW[col]), "\n")
			}
		}
		gap := panelBg.Render(strings.Repeat(" ", columnGap))
		for line := 0; line < f.cellH && len(out) < f.contentH; line++ {
			parts := make([]string, len(cells))
			for col, c := range cells {
				s := ""
				if line < len(c) {
					s = c[line]
				}
				parts[col] = widgets.PadRight(s, f.colW[col])
			}
			out = append(out, widgets.PadRight(strings.Join(parts, gap), width))
		}
	}
	return out
}

func blankCell(width, height int) []string {
	out := make([]string, height)
	for i := range out {
		out[i] = panelBg.Render(strings.Repeat(" ", width))
	}
	return out
}

func (m *Model) isPressed(kind targetKind, i int) bool {
	if m.pressed == nil {
		return false
	}
	t := m.pressed.target
	if kind == targetTab && t.kind == targetTabClose {
		return t.index == i
	}
	return t.kind == kind && t.index == i
}

func (m *Model) hasCursor(kind ContentKind, i int) bool {
	return !m.barFocus && m.modes[kind].cursor == i
}

// renderTabCell draws a three-row cell. The border is only visible for the
// focused tab, the pressed tab and the keyboard cursor.
func (m *Model) renderTabCell(i, width int) string {
	tab := m.tabs[i]
	inner := max(1, width-2)

	title := tab.Title
	if title == "" {
		title = m.res.Text(resource.PanelUntitled)
	}
	titleW := max(1, inner-4)
	title = widgets.PadRight(widgets.Ellipsize(title, titleW), titleW)
	if tab.Incognito {
		title = privateStyle.Render(title)
	}
	fav := m.previews.Render(tab.ID, tab.Preview)
	line := fav + " " + title + mutedStyle.Render(m.res.Icon(resource.IconClose))

	style := panelBg.Border(lipgloss.HiddenBorder())
	switch {
	case m.isPressed(targetTab, i):
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(core.ColorPressed)
	case tab.Focused:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(core.ColorFocus)
	case m.hasCursor(ContentTabs, i):
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(core.ColorAccent)
	}
	style = style.BorderBackground(core.ColorBg)
	return style.Render(widgets.PadRight(line, inner))
}

// renderHistoryRow draws one line: the title, then host and visit time when
// there is room.
func (m *Model) renderHistoryRow(i, width int) string {
	e := m.history[i]
	title := e.Title
	if title == "" {
		title = e.URL
	}
	meta := browser.Host(e.URL)
	if e.Timestamp > 0 {
		meta += " · " + humanize.RelTime(time.UnixMilli(e.Timestamp), m.now(), "ago", "from now")
	}
	metaW := ansi.StringWidth(meta)
	titleW := width - 2
	if width-metaW-3 >= 12 {
		titleW = width - metaW - 3
	} else {
		meta = ""
	}

	line := " " + widgets.PadRight(widgets.Ellipsize(title, max(1, titleW)), max(1, titleW))
	if meta != "" {
		line += " " + mutedStyle.Render(meta)
	}
	line = widgets.PadRight(line, width)

	switch {
	case m.isPressed(targetHistory, i):
		return rowPressStyle.Render(line)
	case m.hasCursor(ContentHistory, i):
		return rowCursorStyle.Render(line)
	}
	return panelBg.Render(line)
}

func (m *Model) renderBar(width int) string {
	spans := m.barSpans(width)
	var b strings.Builder
	x := 0
	if len(spans) > 0 {
		x = spans[0].x0
	}
	b.WriteString(barStyle.Render(strings.Repeat(" ", x)))
	for _, s := range spans {
		style := barStyle
		switch {
		case m.pressed != nil && m.pressed.target.kind == targetButton && m.pressed.target.button == s.button:
			style = barPressStyle
		case m.barFocus && s.index == m.barCursor:
			style = barFocusStyle
		case s.button.Active(m.state.HistoryMode):
			style = barActiveStyle
		}
		b.WriteString(style.Render(m.buttonText(s.button)))
	}
	line := b.String()
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += barStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}
