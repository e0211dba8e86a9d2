package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 1)
	if idx := strings.Index(out, "B"); idx != 16 {
		t.Fatalf("expected B at column 16, got %d in %q", idx, out)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if out != "top\n\nbottom" {
		t.Fatalf("unexpected stack %q", out)
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestLayerKeepsBaseUnderEmptyLines(t *testing.T) {
	out := Layer("aaa\nbbb\nccc", "\nXX\n   ", 4, 3)
	want := []string{"aaa ", "XX  ", "    "}
	if got := strings.Split(out, "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("layer = %q, want %q", got, want)
	}
}

func TestEllipsize(t *testing.T) {
	if got := Ellipsize("abcdefgh", 5); got != "abcd…" {
		t.Fatalf("got %q", got)
	}
	if got := Ellipsize("abc", 5); got != "abc" {
		t.Fatalf("short strings unchanged, got %q", got)
	}
}

func TestPaneFitsWidth(t *testing.T) {
	out := Pane{Title: "A very long title indeed", Content: "line one\nline two", Height: 4, Selected: true}.Render(16, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 16 {
			t.Fatalf("row %q has width %d", ansi.Strip(l), w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[1]), "line one") {
		t.Fatalf("expected content row, got %q", ansi.Strip(lines[1]))
	}
}

func TestPopupBoundsMatchRenderedCard(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 8) + strings.Repeat(".", 20)
	x, y, w, h := PopupBounds("Popup", 20, 9)
	if w != 9 || h != 3 || x != 5 || y != 3 {
		t.Fatalf("bounds = %d,%d %dx%d", x, y, w, h)
	}
	lines := strings.Split(ansi.Strip(RenderPopup(base, "Popup", 20, 9)), "\n")
	if !strings.Contains(lines[y+1], "Popup") || strings.Contains(lines[y], "Popup") {
		t.Fatalf("content line should sit one row below the top border:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[y+1], strings.Repeat(".", x)+"│") {
		t.Fatalf("card should start at column %d: %q", x, lines[y+1])
	}
}
