// Package app wires the browser session, history store, settings and
// configuration into the core model.
package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"
	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/config"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/logx"
	"github.com/jask/tabdeck/internal/panel"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/screens"
)

// Start selects the screen shown when the program starts.
type Start int

const (
	StartHome Start = iota
	StartPanel
	StartSettings
)

const previewCacheSize = 256

type Deps struct {
	// Config is the configuration as stored in ConfigPath.
	Config     config.Config
	ConfigPath string
	// Overrides come from the command line and are never saved.
	Overrides config.Overrides
	Session   *browser.Session
	History   browser.HistoryProvider
	Catalog   *resource.Catalog
	Logger    pslog.Logger
	Version   string
	Start     Start
	// CopyText defaults to the system clipboard.
	CopyText func(string) error
}

type App struct {
	cfg      config.Config
	cfgPath  string
	session  *browser.Session
	history  browser.HistoryProvider
	catalog  *resource.Catalog
	log      pslog.Logger
	ctx      context.Context
	version  string
	start    Start
	copyText func(string) error

	// file and overrides are also touched by the config watcher goroutine.
	file      atomic.Pointer[config.Config]
	overrides atomic.Pointer[config.Overrides]

	keys     *core.KeyRegistry
	commands *core.CommandRegistry
	previews *panel.PreviewCache

	// pending is set by settings actions and drained by the settings change hook.
	pending tea.Cmd
}

func New(d Deps) (*App, error) {
	if d.Session == nil || d.History == nil || d.Catalog == nil {
		return nil, fmt.Errorf("app: session, history and catalog are required")
	}
	log := d.Logger
	if log == nil {
		log = logx.Discard()
	}
	previews, err := panel.NewPreviewCache(previewCacheSize)
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:      d.Overrides.Apply(d.Config),
		cfgPath:  d.ConfigPath,
		session:  d.Session,
		history:  d.History,
		catalog:  d.Catalog,
		log:      log,
		ctx:      pslog.ContextWithLogger(context.Background(), log),
		version:  d.Version,
		start:    d.Start,
		copyText: d.CopyText,
		keys:     core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), d.Config.Keys)),
		commands: core.NewCommandRegistry(nil),
		previews: previews,
	}
	file, ov := d.Config, d.Overrides
	a.file.Store(&file)
	a.overrides.Store(&ov)
	if a.copyText == nil {
		a.copyText = clipboard.WriteAll
	}
	a.catalog.SetLanguage(a.cfg.UI.Language)
	a.RegisterCommands(a.commands)
	return a, nil
}

// Model builds the root bubbletea model.
func (a *App) Model() core.Model {
	h := &home{HomeScreen: screens.NewHomeScreen(a.session, a.catalog), app: a}
	return core.NewModel(a.catalog.Text(resource.AppTitle), h, a.keys, a.commands, a.log)
}

func (a *App) Config() config.Config { return a.cfg }

// RecordVisit stores a visited page. It is the session's visit hook.
func (a *App) RecordVisit(tab browser.TabSummary) {
	_, err := a.history.Add(a.ctx, browser.HistoryEntry{Title: tab.Title, URL: tab.URL})
	if err != nil {
		logx.WithTab(a.log, tab).Warn("record visit failed", "err", err)
	}
}

// Watch forwards configuration file changes to send. It reports whether a
// file was there to watch.
func (a *App) Watch(send func(tea.Msg)) bool {
	if a.cfgPath == "" {
		return false
	}
	return config.Watch(a.cfgPath, func(cfg config.Config, err error) {
		if err != nil {
			send(core.ConfigReloadedMsg{Err: err})
			return
		}
		a.file.Store(&cfg)
		send(core.ConfigReloadedMsg{Config: a.overrides.Load().Apply(cfg)})
	})
}

func (a *App) RegisterCommands(reg *core.CommandRegistry) {
	reg.Register(core.Command{
		ID:          "open-panel",
		Name:        "Open tabs",
		Description: "Show the tab switcher",
		Execute:     func(*core.Model) tea.Cmd { return a.OpenPanel(a.cfg.Panel.StartInHistory) },
	})
	reg.Register(core.Command{
		ID:          "open-history",
		Name:        "Open history",
		Description: "Show the tab switcher on visited pages",
		Execute:     func(*core.Model) tea.Cmd { return a.OpenPanel(true) },
	})
	reg.Register(core.Command{
		ID:          "open-settings",
		Name:        "Settings",
		Description: "Edit preferences",
		Execute:     func(*core.Model) tea.Cmd { return core.PushCmd(a.SettingsScreen()) },
	})
	reg.Register(core.Command{
		ID:          "copy-url",
		Name:        "Copy URL",
		Description: "Copy the focused tab's address",
		Execute:     func(*core.Model) tea.Cmd { return a.copyFocusedURL() },
		Disabled: func(*core.Model) (bool, string) {
			if _, ok := a.session.Focused(); !ok {
				return true, a.catalog.Text(resource.HomeNoTab)
			}
			return false, ""
		},
	})
}

func (a *App) copyFocusedURL() tea.Cmd {
	tab, ok := a.session.Focused()
	if !ok {
		return nil
	}
	if err := a.copyText(tab.URL); err != nil {
		return core.ErrorCmd(fmt.Errorf("copy url: %w", err))
	}
	return core.StatusCmd(a.catalog.Format(resource.StatusCopy, map[string]any{"URL": tab.URL}))
}

func (a *App) startCmd() tea.Cmd {
	switch a.start {
	case StartPanel:
		return a.OpenPanel(a.cfg.Panel.StartInHistory)
	case StartSettings:
		return core.PushCmd(a.SettingsScreen())
	}
	return nil
}

// reload applies a configuration read back from disk.
func (a *App) reload(msg core.ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		a.log.Warn("config reload failed", "err", msg.Err)
		return core.ErrorCmd(fmt.Errorf("reload config: %w", msg.Err))
	}
	a.cfg = msg.Config
	a.catalog.SetLanguage(a.cfg.UI.Language)
	a.log.Debug("config applied", "language", a.cfg.UI.Language, "reversed", a.cfg.Panel.Reversed)
	return nil
}
