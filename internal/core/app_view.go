package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabdeck/internal/widgets"
)

const (
	headerRows = 1
	chromeRows = headerRows + 2 // status + footer
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()
	width := max(1, m.width)

	body := m.renderBody(width, bodyHeight)
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

// renderBody draws home, then every stacked screen. A Layered screen shows
// what lies beneath it through its blank lines.
func (m Model) renderBody(width, height int) string {
	var body string
	if m.home != nil {
		body = m.home.View(width, height)
	}
	for _, s := range m.screens.items {
		view := s.View(width, height)
		if l, ok := s.(Layered); ok && l.Layered() {
			body = widgets.Layer(body, view, width, height)
			continue
		}
		body = view
	}
	return body
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.title)
	right := ""
	if top := m.screens.Top(); top != nil {
		right = activeTabStyle.Render(top.Title())
	} else if m.home != nil {
		right = inactiveTabStyle.Render(m.home.Title())
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
