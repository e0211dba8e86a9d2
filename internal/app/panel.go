package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/logx"
	"github.com/jask/tabdeck/internal/panel"
	"github.com/jask/tabdeck/internal/resource"
)

// NewPanel builds a tab switcher over the current session.
func (a *App) NewPanel(historyMode bool) *panel.Model {
	p := panel.New(panel.Options{
		State: panel.DisplayState{
			HistoryMode: historyMode,
			Reversed:    a.cfg.Panel.Reversed,
			TwoColumns:  a.cfg.Panel.TwoColumns,
		},
		LongPress: a.cfg.Panel.LongPress(),
		Keys:      a.keys,
		Resolver:  a.catalog,
		Previews:  a.previews,
		Callbacks: a.panelCallbacks(),
		Logger:    logx.WithScope(a.log, "panel"),
	})
	p.SetTabs(a.session.Tabs())
	return p
}

// OpenPanel pushes a tab switcher, loading history first when it opens on it.
func (a *App) OpenPanel(historyMode bool) tea.Cmd {
	push := core.PushCmd(a.NewPanel(historyMode))
	return tea.Sequence(push, a.loadHistory())
}

func (a *App) panelCallbacks() panel.Callbacks {
	return panel.Callbacks{
		OnTabSelect: func(tab browser.TabSummary) tea.Cmd {
			a.session.Select(tab.ID)
			return core.PopCmd
		},
		OnTabClose: func(tab browser.TabSummary) tea.Cmd {
			a.session.Close(tab.ID)
			return a.tabsCmd()
		},
		OnTabIconClick:     a.tabsCmd,
		OnHistoryIconClick: a.loadHistory,
		OnHistoryOpen: func(e browser.HistoryEntry) tea.Cmd {
			a.session.Open(e.URL, false)
			return core.PopCmd
		},
		OnHistoryLongPress: a.deleteHistory,
		OnAddTab: func() tea.Cmd {
			a.session.Open("", false)
			return core.PopCmd
		},
		OnAddIncognitoTab: func() tea.Cmd {
			a.session.Open("", true)
			return core.PopCmd
		},
		OnNewWindow: func() tea.Cmd {
			tab := a.session.NewWindow()
			logx.WithTab(a.log, tab).Info("window opened", "windows", a.session.Windows())
			return tea.Batch(core.PopCmd, core.StatusCmd(a.catalog.Format(resource.PanelNewTab, map[string]any{"Title": tab.Title})))
		},
		OnDeleteAll: a.clearHistory,
	}
}

func (a *App) tabsCmd() tea.Cmd {
	tabs := a.session.Tabs()
	return func() tea.Msg { return panel.TabsMsg{Tabs: tabs} }
}

func (a *App) loadHistory() tea.Cmd {
	limit := a.cfg.History.Limit
	return func() tea.Msg {
		entries, err := a.history.List(a.ctx, limit)
		if err != nil {
			return panel.HistoryMsg{Err: fmt.Errorf("load history: %w", err)}
		}
		return panel.HistoryMsg{Entries: entries}
	}
}

func (a *App) deleteHistory(e browser.HistoryEntry) tea.Cmd {
	limit := a.cfg.History.Limit
	return func() tea.Msg {
		if err := a.history.Delete(a.ctx, e.ID); err != nil {
			return panel.HistoryMsg{Err: fmt.Errorf("delete history entry %d: %w", e.ID, err)}
		}
		logx.Ctx(a.ctx).Info("history entry deleted", "id", e.ID)
		entries, err := a.history.List(a.ctx, limit)
		if err != nil {
			return panel.HistoryMsg{Err: fmt.Errorf("load history: %w", err)}
		}
		return panel.HistoryMsg{Entries: entries}
	}
}

func (a *App) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if err := a.history.DeleteAll(a.ctx); err != nil {
			return panel.HistoryMsg{Err: fmt.Errorf("clear history: %w", err)}
		}
		logx.Ctx(a.ctx).Info("history cleared")
		return panel.HistoryMsg{Entries: nil}
	}
}
