package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/config"
	"github.com/jask/tabdeck/internal/core"
	"github.com/jask/tabdeck/internal/history"
	"github.com/jask/tabdeck/internal/panel"
	"github.com/jask/tabdeck/internal/resource"
	"github.com/jask/tabdeck/internal/settings"
)

type harness struct {
	app     *App
	session *browser.Session
	store   *history.Store
	copied  []string
	cfgPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, config.Overrides{})
}

func newHarnessWith(t *testing.T, ov config.Overrides) *harness {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	store, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	catalog, err := resource.NewCatalog("en")
	require.NoError(t, err)

	h := &harness{store: store, cfgPath: cfgPath}
	var a *App
	h.session = browser.NewSession("https://home.test", browser.WithVisitHook(func(tab browser.TabSummary) {
		a.RecordVisit(tab)
	}))
	a, err = New(Deps{
		Config:     cfg,
		ConfigPath: cfgPath,
		Overrides:  ov,
		Session:    h.session,
		History:    store,
		Catalog:    catalog,
		Version:    "v0.0.1",
		CopyText: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	})
	require.NoError(t, err)
	h.app = a
	return h
}

func item(t *testing.T, items []settings.Item, title resource.StringID) settings.Item {
	t.Helper()
	for _, it := range items {
		if it.Describe().Title == title {
			return it
		}
	}
	t.Fatalf("no settings entry %q", title)
	return nil
}

// drain runs cmd and every batch it expands to, collecting the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Deps{})
	require.Error(t, err)
}

func TestVisitsAreRecordedExceptIncognito(t *testing.T) {
	h := newHarness(t)
	h.session.Open("https://a.test", false)
	h.session.Open("https://secret.test", true)
	h.session.Open("https://b.test", false)

	msg := h.app.loadHistory()().(panel.HistoryMsg)
	require.NoError(t, msg.Err)
	require.Len(t, msg.Entries, 2)
	require.Equal(t, "https://b.test", msg.Entries[0].URL)
}

func TestPanelCallbacksDriveSession(t *testing.T) {
	h := newHarness(t)
	a := h.session.Open("https://a.test", false)
	b := h.session.Open("https://b.test", false)
	cb := h.app.panelCallbacks()

	require.IsType(t, core.PopScreenMsg{}, cb.OnTabSelect(a)())
	focused, ok := h.session.Focused()
	require.True(t, ok)
	require.Equal(t, a.ID, focused.ID)

	tabs := cb.OnTabClose(a)().(panel.TabsMsg)
	require.Len(t, tabs.Tabs, 1)
	require.Equal(t, b.ID, tabs.Tabs[0].ID)
	require.True(t, tabs.Tabs[0].Focused)

	cb.OnAddIncognitoTab()
	require.Len(t, h.session.Tabs(), 2)
	require.True(t, h.session.Tabs()[1].Incognito)

	msgs := drain(cb.OnNewWindow())
	require.Len(t, msgs, 2)
	require.Equal(t, 2, h.session.Windows())
}

func TestPanelHistoryCallbacks(t *testing.T) {
	h := newHarness(t)
	h.session.Open("https://a.test", false)
	h.session.Open("https://b.test", false)
	cb := h.app.panelCallbacks()

	entries := cb.OnHistoryIconClick()().(panel.HistoryMsg).Entries
	require.Len(t, entries, 2)

	after := cb.OnHistoryLongPress(entries[0])().(panel.HistoryMsg)
	require.NoError(t, after.Err)
	require.Len(t, after.Entries, 1)
	require.Equal(t, "https://a.test", after.Entries[0].URL)

	missing := cb.OnHistoryLongPress(entries[0])().(panel.HistoryMsg)
	require.ErrorIs(t, missing.Err, history.ErrNotFound)

	cb.OnHistoryOpen(after.Entries[0])
	require.Len(t, h.session.Tabs(), 3)

	cleared := cb.OnDeleteAll()().(panel.HistoryMsg)
	require.NoError(t, cleared.Err)
	require.Empty(t, cleared.Entries)
	left, err := h.store.List(context.Background(), -1)
	require.NoError(t, err)
	require.Empty(t, left)
}

func TestNewPanelUsesConfig(t *testing.T) {
	h := newHarness(t)
	h.app.cfg.Panel.Reversed = true
	h.app.cfg.Panel.TwoColumns = false
	h.session.Open("https://a.test", false)

	p := h.app.NewPanel(true)
	st := p.State()
	require.True(t, st.HistoryMode)
	require.True(t, st.Reversed)
	require.False(t, st.TwoColumns)
	require.Len(t, p.Tabs(), 1)
}

func TestSettingsChangePersists(t *testing.T) {
	h := newHarness(t)
	items := h.app.SettingsItems()

	require.True(t, settings.Activate(item(t, items, resource.SettingsReversed), nil))
	msgs := drain(h.app.settingChanged(item(t, items, resource.SettingsReversed)))
	require.Len(t, msgs, 1)
	reload, ok := msgs[0].(core.ConfigReloadedMsg)
	require.True(t, ok)
	require.True(t, reload.Config.Panel.Reversed)

	saved, err := config.Load(h.cfgPath)
	require.NoError(t, err)
	require.True(t, saved.Panel.Reversed)
}

func TestLanguageChoiceSwitchesCatalog(t *testing.T) {
	h := newHarness(t)
	lang := item(t, h.app.SettingsItems(), resource.SettingsLanguage).(settings.ChoiceField)
	require.Equal(t, 0, lang.Selected())

	lang.Select(1)
	require.Equal(t, "de", h.app.Config().UI.Language)
	require.Equal(t, "de", h.app.catalog.Language().String())
	require.Equal(t, "Einstellungen", h.app.catalog.Text(resource.SettingsTitle))
}

func TestLongPressChoiceMatchesPresets(t *testing.T) {
	h := newHarness(t)
	lp := item(t, h.app.SettingsItems(), resource.SettingsLongPress).(settings.ChoiceField)
	require.Len(t, lp.Labels(), len(longPressPresets))
	require.Equal(t, 1, lp.Selected(), "default 500ms is the medium preset")
	lp.Select(2)
	require.Equal(t, longPressPresets[2], h.app.Config().Panel.LongPressMS)
}

func TestClearHistoryAction(t *testing.T) {
	h := newHarness(t)
	h.session.Open("https://a.test", false)
	clearItem := item(t, h.app.SettingsItems(), resource.SettingsClearHistory)

	require.True(t, settings.Activate(clearItem, nil))
	msgs := drain(h.app.settingChanged(clearItem))
	var status core.StatusMsg
	for _, m := range msgs {
		if s, ok := m.(core.StatusMsg); ok {
			status = s
		}
	}
	require.Equal(t, "History cleared", status.Text)
	require.False(t, status.IsErr)

	left, err := h.store.List(context.Background(), -1)
	require.NoError(t, err)
	require.Empty(t, left)
	require.Nil(t, h.app.pending)
}

func TestLinksOpenTabsWithoutSaving(t *testing.T) {
	h := newHarness(t)
	link := item(t, h.app.SettingsItems(), resource.LinkProjectSite)
	require.True(t, settings.Activate(link, h.session))
	require.Nil(t, h.app.settingChanged(link))

	tab, ok := h.session.Focused()
	require.True(t, ok)
	require.Equal(t, settings.ProjectSite.URL(), tab.URL)
	_, err := config.Load(h.cfgPath)
	require.NoError(t, err)
}

func TestCopyURLCommand(t *testing.T) {
	h := newHarness(t)
	m := h.app.Model()
	reg := m.CommandRegistry()

	status := reg.Execute("copy-url", &m)().(core.StatusMsg)
	require.Equal(t, "No open tab. Press t to open the tab panel.", status.Text)

	h.session.Open("https://a.test", false)
	status = reg.Execute("copy-url", &m)().(core.StatusMsg)
	require.Equal(t, []string{"https://a.test"}, h.copied)
	require.Contains(t, status.Text, "https://a.test")

	h.app.copyText = func(string) error { return errors.New("no display") }
	status = reg.Execute("copy-url", &m)().(core.StatusMsg)
	require.True(t, status.IsErr)
}

func TestFlagOverridesAreNotSaved(t *testing.T) {
	on := true
	h := newHarnessWith(t, config.Overrides{Reversed: &on})
	require.True(t, h.app.Config().Panel.Reversed)

	items := h.app.SettingsItems()
	require.True(t, settings.Activate(item(t, items, resource.SettingsStartHistory), nil))
	msgs := drain(h.app.settingChanged(item(t, items, resource.SettingsStartHistory)))
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].(core.ConfigReloadedMsg).Config.Panel.Reversed, "the run keeps the flag value")

	saved, err := config.Load(h.cfgPath)
	require.NoError(t, err)
	require.True(t, saved.Panel.StartInHistory)
	require.False(t, saved.Panel.Reversed, "a one-off flag must not reach the file")

	// Toggling the overridden entry itself is a real choice and is saved.
	require.True(t, settings.Activate(item(t, items, resource.SettingsReversed), nil))
	drain(h.app.settingChanged(item(t, items, resource.SettingsReversed)))
	require.True(t, settings.Activate(item(t, items, resource.SettingsReversed), nil))
	drain(h.app.settingChanged(item(t, items, resource.SettingsReversed)))
	saved, err = config.Load(h.cfgPath)
	require.NoError(t, err)
	require.True(t, saved.Panel.Reversed)
	require.True(t, h.app.Config().Panel.Reversed)
}

func TestHomeAppliesReloadedConfig(t *testing.T) {
	h := newHarness(t)
	m := h.app.Model()
	cfg := h.app.Config()
	cfg.UI.Language = "de"
	cfg.Panel.StartInHistory = true

	_, _ = m.Update(core.ConfigReloadedMsg{Config: cfg})
	require.True(t, h.app.Config().Panel.StartInHistory)
	require.Equal(t, "de", h.app.catalog.Language().String())

	_, cmd := m.Update(core.ConfigReloadedMsg{Err: errors.New("bad toml")})
	require.NotNil(t, cmd)
	require.True(t, h.app.Config().Panel.StartInHistory, "a failed reload keeps the last good config")
}

func TestStartScreens(t *testing.T) {
	h := newHarness(t)
	require.Nil(t, h.app.startCmd())

	h.app.start = StartSettings
	push, ok := h.app.startCmd()().(core.PushScreenMsg)
	require.True(t, ok)
	require.Equal(t, core.ScopeSettings, push.Screen.Scope())
}
