package browser

import (
	"hash/fnv"
	"image"
	"image/color"
	"sync"

	"github.com/google/uuid"
)

// Session is an in-memory Engine. It is safe for use from tea.Cmd goroutines.
type Session struct {
	mu       sync.Mutex
	tabs     []TabSummary
	homepage string
	windows  int
	onVisit  func(TabSummary)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithVisitHook is called for every non-incognito page opened.
func WithVisitHook(fn func(TabSummary)) SessionOption {
	return func(s *Session) { s.onVisit = fn }
}

// NewSession returns a session with one window and no tabs.
func NewSession(homepage string, opts ...SessionOption) *Session {
	s := &Session{homepage: homepage, windows: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Tabs() []TabSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TabSummary, len(s.tabs))
	copy(out, s.tabs)
	return out
}

// Open appends a focused tab for rawURL. An empty URL opens the homepage.
func (s *Session) Open(rawURL string, incognito bool) TabSummary {
	if rawURL == "" {
		rawURL = s.homepage
	}
	tab := TabSummary{
		ID:        uuid.NewString(),
		Title:     Host(rawURL),
		URL:       rawURL,
		Focused:   true,
		Incognito: incognito,
	}
	if !incognito {
		tab.Preview = Favicon(tab.Title)
	}

	s.mu.Lock()
	for i := range s.tabs {
		s.tabs[i].Focused = false
	}
	s.tabs = append(s.tabs, tab)
	hook := s.onVisit
	s.mu.Unlock()

	if hook != nil && !incognito {
		hook(tab)
	}
	return tab
}

// Close removes the tab. Closing the focused tab focuses its left neighbour.
// Unknown ids are ignored.
func (s *Session) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	wasFocused := s.tabs[idx].Focused
	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)
	if wasFocused && len(s.tabs) > 0 {
		if idx > 0 {
			idx--
		}
		s.tabs[idx].Focused = true
	}
}

func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(id) < 0 {
		return
	}
	for i := range s.tabs {
		s.tabs[i].Focused = s.tabs[i].ID == id
	}
}

// NewWindow counts a new window and opens the homepage in it.
func (s *Session) NewWindow() TabSummary {
	s.mu.Lock()
	s.windows++
	s.mu.Unlock()
	return s.Open("", false)
}

func (s *Session) Windows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows
}

// OpenURL implements URLOpener by opening rawURL in a new tab.
func (s *Session) OpenURL(rawURL string) {
	s.Open(rawURL, false)
}

// Focused returns the focused tab, if any.
func (s *Session) Focused() (TabSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tabs {
		if t.Focused {
			return t, true
		}
	}
	return TabSummary{}, false
}

func (s *Session) indexLocked(id string) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Favicon draws a 16x16 placeholder icon whose colours derive from host.
func Favicon(host string) image.Image {
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	sum := h.Sum32()
	fg := color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 0xff}
	bg := color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := bg
			dx, dy := x-8, y-8
			if dx*dx+dy*dy <= 36 {
				c = fg
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
