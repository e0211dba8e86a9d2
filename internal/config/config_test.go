package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.True(t, cfg.Panel.TwoColumns)
	require.False(t, cfg.Panel.Reversed)
	require.Equal(t, 500*time.Millisecond, cfg.Panel.LongPress())
	require.Equal(t, 200, cfg.History.Limit)
	require.Equal(t, "en", cfg.UI.Language)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	want := Config{
		Panel:   PanelConfig{Reversed: true, TwoColumns: false, StartInHistory: true, LongPressMS: 800},
		History: HistoryConfig{Path: "/tmp/h.db", Limit: 50},
		UI:      UIConfig{Language: "de", Homepage: "https://a.test"},
		Log:     LogConfig{Path: "/tmp/t.log", Level: "debug"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadClampsAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[panel]\nlong_press_ms = 5\n[history]\nlimit = 999999\n"), 0o644))
	t.Setenv("TABDECK_UI_LANGUAGE", " DE ")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, MinLongPressMS, cfg.Panel.LongPressMS)
	require.Equal(t, MaxHistory, cfg.History.Limit)
	require.Equal(t, "de", cfg.UI.Language)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[panel\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestPathResolution(t *testing.T) {
	t.Setenv("TABDECK_CONFIG", "/etc/tabdeck.toml")
	require.Equal(t, "/x.toml", Path("/x.toml"))
	require.Equal(t, "/etc/tabdeck.toml", Path(""))
}

func TestWatchWithoutFile(t *testing.T) {
	require.False(t, Watch(filepath.Join(t.TempDir(), "none.toml"), func(Config, error) {}))
}

func TestKeysOverridesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Keys = map[string][]string{"open-panel": {"ctrl+t", "T"}}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ctrl+t", "T"}, got.Keys["open-panel"])
}

func TestOverrides(t *testing.T) {
	on := true
	file := Config{Panel: PanelConfig{Reversed: false, TwoColumns: true}, History: HistoryConfig{Limit: 10}}
	ov := Overrides{Reversed: &on}

	eff := ov.Apply(file)
	require.True(t, eff.Panel.Reversed)
	require.True(t, eff.Panel.TwoColumns)

	eff.History.Limit = 20
	saved := ov.Persisted(eff, file)
	require.False(t, saved.Panel.Reversed, "a flag value is never written back")
	require.Equal(t, 20, saved.History.Limit)

	require.Equal(t, ov, ov.Forget(eff), "an untouched override stays")

	eff.Panel.Reversed = false
	ov = ov.Forget(eff)
	require.Nil(t, ov.Reversed, "changing the overridden field releases it")
	require.Equal(t, eff, ov.Apply(eff))
}
