package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabdeck/internal/config"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/screens"
	"github.com/jask/tabdeck/internal/settings"
)

// Long-press presets offered in settings, in milliseconds.
var longPressPresets = []int{900, 500, 250}

// SettingsItems describes the preferences. Every entry edits a.cfg directly.
func (a *App) SettingsItems() []settings.Item {
	cfg := &a.cfg
	items := []settings.Item{
		settings.NewBoolean(resource.SettingsReversed, resource.IconReverse, settings.Ref(&cfg.Panel.Reversed),
			settings.WithSummary(resource.SettingsReversedSum)),
		settings.NewBoolean(resource.SettingsTwoColumns, resource.IconColumns, settings.Ref(&cfg.Panel.TwoColumns),
			settings.WithSummary(resource.SettingsTwoColumnsSum)),
		settings.NewBoolean(resource.SettingsStartHistory, resource.IconHistoryStart, settings.Ref(&cfg.Panel.StartInHistory)),
		settings.NewChoice(resource.SettingsLanguage, resource.IconLanguage,
			settings.Observe(settings.Ref(&cfg.UI.Language), a.catalog.SetLanguage),
			resource.Languages,
			[]resource.StringID{resource.SettingsLanguageEN, resource.SettingsLanguageDE}),
		settings.NewChoice(resource.SettingsLongPress, resource.IconTimer, settings.Ref(&cfg.Panel.LongPressMS),
			longPressPresets,
			[]resource.StringID{resource.SettingsLongPressLong, resource.SettingsLongPressMed, resource.SettingsLongPressShort},
			settings.WithSummary(resource.SettingsLongPressSum)),
		settings.NewValue(resource.SettingsHistoryLimit, resource.IconNumber, settings.Ref(&cfg.History.Limit),
			settings.IntCodec(config.MinHistory, config.MaxHistory)),
		settings.NewValue(resource.SettingsHomepage, resource.IconHome, settings.Ref(&cfg.UI.Homepage),
			settings.URLCodec(), settings.WithSpan(2)),
		settings.NewAction(resource.SettingsClearHistory, resource.IconDelete, func() {
			a.pending = a.clearHistoryStatus()
		}),
	}
	for _, l := range settings.Links {
		items = append(items, l)
	}
	return append(items, settings.NewVersion(resource.SettingsVersion, resource.IconInfo, a.version, func() {
		a.pending = a.copyVersion()
	}))
}

func (a *App) SettingsScreen() *screens.SettingsScreen {
	return screens.NewSettingsScreen(screens.SettingsOptions{
		Items:    a.SettingsItems(),
		Resolver: a.catalog,
		Opener:   a.session,
		Keys:     a.keys,
		OnChange: a.settingChanged,
	})
}

// settingChanged persists the configuration and lets every screen see it.
func (a *App) settingChanged(it settings.Item) tea.Cmd {
	pending := a.pending
	a.pending = nil
	if _, isLink := it.(settings.Link); isLink {
		return pending
	}

	// Flag values stay out of the file unless the user changed that entry.
	ov := a.overrides.Load().Forget(a.cfg)
	a.overrides.Store(&ov)
	saved := ov.Persisted(a.cfg, *a.file.Load())
	a.file.Store(&saved)

	cfg := a.cfg
	cmds := []tea.Cmd{pending, func() tea.Msg { return core.ConfigReloadedMsg{Config: cfg} }}
	if a.cfgPath != "" {
		if err := config.Save(a.cfgPath, saved); err != nil {
			a.log.Error("config save failed", "path", a.cfgPath, "err", err)
			cmds = append(cmds, core.ErrorCmd(fmt.Errorf("save settings: %w", err)))
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) clearHistoryStatus() tea.Cmd {
	return func() tea.Msg {
		if err := a.history.DeleteAll(a.ctx); err != nil {
			return core.StatusMsg{Text: fmt.Errorf("clear history: %w", err).Error(), IsErr: true}
		}
		return core.StatusMsg{Text: a.catalog.Text(resource.SettingsClearedHistory)}
	}
}

func (a *App) copyVersion() tea.Cmd {
	if err := a.copyText(a.version); err != nil {
		return core.ErrorCmd(fmt.Errorf("copy version: %w", err))
	}
	return core.StatusCmd(a.version)
}
