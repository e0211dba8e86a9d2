package panel

import "github.com/jask/tabdeck/internal/browser"

// DisplayState holds the flags that shape the panel.
type DisplayState struct {
	HistoryMode bool
	Reversed    bool
	TwoColumns  bool
}

// Content is the view the flags select.
func (s DisplayState) Content() ContentKind {
	if s.HistoryMode {
		return ContentHistory
	}
	return ContentTabs
}

// Columns is the column count for kind. The history list is a flat list.
func (s DisplayState) Columns(kind ContentKind) int {
	if kind == ContentTabs && s.TwoColumns {
		return 2
	}
	return 1
}

// removeTab drops the first tab with the same ID as tab. It reports whether
// anything was removed.
func removeTab(tabs []browser.TabSummary, tab browser.TabSummary) ([]browser.TabSummary, bool) {
	for i, t := range tabs {
		if t.ID == tab.ID {
			out := make([]browser.TabSummary, 0, len(tabs)-1)
			out = append(out, tabs[:i]...)
			return append(out, tabs[i+1:]...), true
		}
	}
	return tabs, false
}

// modeState is the cursor and scroll position kept per content kind.
type modeState struct {
	cursor int
	scroll int // first visible logical row
}

// clamp keeps the cursor inside a list of n items.
func (s *modeState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
