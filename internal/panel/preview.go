package panel

import (
	"fmt"
	"image"
	"image/color"
	"reflect"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"

	"github.com/jask/tabdeck/internal/resource"
)

// previewCells is the width of a rendered favicon in terminal cells.
const previewCells = 2

// PreviewCache renders favicons as half-block cells and remembers the
// result per key until the key's image changes.
type PreviewCache struct {
	cache *lru.Cache[string, preview]
}

type preview struct {
	img image.Image
	s   string
}

func NewPreviewCache(size int) (*PreviewCache, error) {
	c, err := lru.New[string, preview](max(1, size))
	if err != nil {
		return nil, fmt.Errorf("preview cache: %w", err)
	}
	return &PreviewCache{cache: c}, nil
}

// Render returns a previewCells-wide string for img. A nil image renders
// the globe glyph.
func (p *PreviewCache) Render(key string, img image.Image) string {
	if img == nil {
		return resource.Glyph(resource.IconGlobe) + " "
	}
	if p != nil {
		if e, ok := p.cache.Get(key); ok && sameImage(e.img, img) {
			return e.s
		}
	}
	s := renderHalfBlocks(img)
	if p != nil {
		p.cache.Add(key, preview{img: img, s: s})
	}
	return s
}

// sameImage reports whether a and b are the same image value. Images of
// non-comparable types never match.
func sameImage(a, b image.Image) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func (p *PreviewCache) Len() int {
	if p == nil {
		return 0
	}
	return p.cache.Len()
}

// renderHalfBlocks scales img to previewCells x 2 pixels; each cell shows the
// upper pixel as foreground and the lower one as background of "▀".
func renderHalfBlocks(img image.Image) string {
	small := image.NewRGBA(image.Rect(0, 0, previewCells, 2))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := ""
	for x := 0; x < previewCells; x++ {
		top := small.RGBAAt(x, 0)
		bottom := small.RGBAAt(x, 1)
		out += lipgloss.NewStyle().
			Foreground(hexColor(top)).
			Background(hexColor(bottom)).
			Render("▀")
	}
	return out
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
