// Package widgets holds width-aware rendering primitives shared by screens.
package widgets

// Widget renders itself into at most width columns and height rows.
type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed string, clipped to the area.
type Text string

func (t Text) Render(width, height int) string {
	lines := SplitLines(string(t), height)
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return joinLines(lines)
}
