package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/widgets"
)

// TabSource is the part of the engine the home page reads.
type TabSource interface {
	Tabs() []browser.TabSummary
	Focused() (browser.TabSummary, bool)
}

// Formatter resolves messages with template data.
type Formatter interface {
	resource.Resolver
	Format(id resource.StringID, data map[string]any) string
}

var (
	homeTitleStyle = lipgloss.NewStyle().Foreground(core.ColorText).Bold(true)
	homeURLStyle   = lipgloss.NewStyle().Foreground(core.ColorAccent)
	homeMutedStyle = lipgloss.NewStyle().Foreground(core.ColorMuted)
	homePrivate    = lipgloss.NewStyle().Foreground(core.ColorPrivate).Bold(true)
)

// HomeScreen is the page beneath the panel: the focused tab.
type HomeScreen struct {
	tabs TabSource
	res  Formatter
}

func NewHomeScreen(tabs TabSource, res Formatter) *HomeScreen {
	return &HomeScreen{tabs: tabs, res: res}
}

func (h *HomeScreen) Title() string {
	if tab, ok := h.tabs.Focused(); ok {
		return widgets.Ellipsize(browser.Host(tab.URL), 40)
	}
	return h.res.Text(resource.AppTitle)
}

func (h *HomeScreen) Scope() string { return core.ScopeHome }

func (h *HomeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	return h, nil, false
}

func (h *HomeScreen) View(width, height int) string {
	tab, ok := h.tabs.Focused()
	if !ok {
		return widgets.Text("\n " + homeMutedStyle.Render(h.res.Text(resource.HomeNoTab))).Render(width, height)
	}

	title := tab.Title
	if title == "" {
		title = h.res.Text(resource.PanelUntitled)
	}
	head := homeTitleStyle.Render(widgets.Ellipsize(title, max(1, width-4)))
	if tab.Incognito {
		head = homePrivate.Render(h.res.Icon(resource.IconIncognito)+" "+h.res.Text(resource.PanelIncogPrefix)) + " " + head
	}
	lines := []string{
		"",
		" " + head,
		" " + homeURLStyle.Render(widgets.Ellipsize(tab.URL, max(1, width-2))),
		"",
		" " + homeMutedStyle.Render(h.res.Format(resource.HomeHint, map[string]any{"Count": len(h.tabs.Tabs())})),
	}
	return widgets.Text(strings.Join(lines, "\n")).Render(width, height)
}
