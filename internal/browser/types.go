// Package browser holds the records the panel works with and the collaborator
// interfaces it drives: the tab engine, the history provider and the URL opener.
package browser

import (
	"context"
	"image"
	"net/url"
	"strings"
)

// TabSummary is a snapshot of one open tab.
type TabSummary struct {
	ID        string
	Title     string
	URL       string
	Focused   bool
	Incognito bool
	// Preview is the tab's favicon; nil renders the globe glyph.
	Preview image.Image
}

// HistoryEntry is one visited page as stored by a HistoryProvider.
type HistoryEntry struct {
	ID        int64
	Title     string
	URL       string
	Timestamp int64 // ms since epoch
}

// Engine owns the real list of open tabs.
type Engine interface {
	Tabs() []TabSummary
	Open(rawURL string, incognito bool) TabSummary
	Close(id string)
	Select(id string)
	NewWindow() TabSummary
}

// HistoryProvider lists and edits visited pages, newest first.
type HistoryProvider interface {
	List(ctx context.Context, limit int) ([]HistoryEntry, error)
	Add(ctx context.Context, e HistoryEntry) (HistoryEntry, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// URLOpener opens an external link.
type URLOpener interface {
	OpenURL(rawURL string)
}

// Host returns the display host of rawURL without a leading "www.".
// Unparseable input is returned unchanged.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
