package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorder   = lipgloss.Color("#6c7086")
	paneSelected = lipgloss.Color("#89b4fa")
	paneFocused  = lipgloss.Color("#a6e3a1")
	paneText     = lipgloss.Color("#cdd6f4")
)

// Pane is a rounded box with the title set into its top border.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := max(3, p.Height)
	if height > 0 && h > height {
		h = max(3, height)
	}
	width = max(4, width)

	border := paneBorder
	if p.Selected {
		border = paneSelected
	}
	if p.Focused {
		border = paneFocused
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneText).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(paneText)

	titlePrefix := ""
	if p.Selected {
		titlePrefix = "▶ "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "…") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	contentLines := nonBlankLines(p.Content)
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = contentStyle.Render(ansi.Truncate(line, contentWidth, "…"))
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(rows, "\n")
}

func nonBlankLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
