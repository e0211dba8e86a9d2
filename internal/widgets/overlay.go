package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup in a rounded card centred over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	card := popupCard(popup)
	x, y, w, h := PopupBounds(popup, width, height)
	if w <= 0 || h <= 0 {
		return baseCanvas
	}
	return overlayAt(baseCanvas, card, x, y, width, height)
}

// PopupBounds returns where RenderPopup places the card for popup, border
// included. Content line i of popup sits at row y+1+i.
func PopupBounds(popup string, width, height int) (x, y, w, h int) {
	lines := SplitLines(popupCard(popup), 0)
	w, h = maxLineWidth(lines), len(lines)
	x = max(0, (width-w)/2)
	y = max(0, (height-h)/2)
	return x, y, w, h
}

func popupCard(popup string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(popup)
}

// Layer draws top over base line by line. Empty lines of top keep the base
// line; a line of spaces still covers it.
func Layer(base, top string, width, height int) string {
	baseLines := SplitLines(base, height)
	topLines := SplitLines(top, height)
	for i := range baseLines {
		if topLines[i] != "" {
			baseLines[i] = padRightANSI(topLines[i], width)
			continue
		}
		baseLines[i] = padRightANSI(baseLines[i], width)
	}
	return joinLines(baseLines)
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := SplitLines(base, height)
	overlayLines := SplitLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = dropColumns(target, pos)
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		baseLines[row] = left + overlayLine + right
	}
	return joinLines(baseLines)
}

func fitCanvas(s string, width, height int) string {
	lines := SplitLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return joinLines(lines)
}

// SplitLines splits s into exactly height lines, or all of them when height
// is not positive.
func SplitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func joinLines(lines []string) string { return strings.Join(lines, "\n") }

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
