package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	MinLongPressMS = 100
	MaxLongPressMS = 3000
	MinHistory     = 1
	MaxHistory     = 10000
)

// Config holds application configuration.
type Config struct {
	Panel   PanelConfig   `mapstructure:"panel"`
	History HistoryConfig `mapstructure:"history"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`

	// Keys overrides the default keys of an action, e.g. "open-panel" = ["ctrl+t"].
	Keys map[string][]string `mapstructure:"keys"`
}

// PanelConfig holds the tab panel display flags.
type PanelConfig struct {
	Reversed       bool `mapstructure:"reversed"`
	TwoColumns     bool `mapstructure:"two_columns"`
	StartInHistory bool `mapstructure:"start_in_history"`
	LongPressMS    int  `mapstructure:"long_press_ms"`
}

// HistoryConfig holds the sqlite history settings.
type HistoryConfig struct {
	Path  string `mapstructure:"path"`
	Limit int    `mapstructure:"limit"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string `mapstructure:"language"`
	Homepage string `mapstructure:"homepage"`
}

// LogConfig holds the log sink settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// LongPress is the hold time after which a press counts as long.
func (p PanelConfig) LongPress() time.Duration {
	return time.Duration(p.LongPressMS) * time.Millisecond
}

// Path resolves the config file: override, then TABDECK_CONFIG, then
// ~/.config/tabdeck/config.toml.
func Path(override string) string {
	if override != "" {
		return override
	}
	if p := os.Getenv("TABDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tabdeck", "config.toml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("panel.reversed", false)
	v.SetDefault("panel.two_columns", true)
	v.SetDefault("panel.start_in_history", false)
	v.SetDefault("panel.long_press_ms", 500)
	v.SetDefault("history.path", filepath.Join(home, ".local", "share", "tabdeck", "history.db"))
	v.SetDefault("history.limit", 200)
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.homepage", "https://duckduckgo.com")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "tabdeck", "tabdeck.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("TABDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	c.Panel.LongPressMS = clamp(c.Panel.LongPressMS, MinLongPressMS, MaxLongPressMS)
	c.History.Limit = clamp(c.History.Limit, MinHistory, MaxHistory)
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Load reads configuration from the file at path (if present) and env.
// Env var overrides use prefix TABDECK_.
func Load(path string) (Config, error) {
	v := newViper(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return decode(v)
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("panel.reversed", cfg.Panel.Reversed)
	v.Set("panel.two_columns", cfg.Panel.TwoColumns)
	v.Set("panel.start_in_history", cfg.Panel.StartInHistory)
	v.Set("panel.long_press_ms", cfg.Panel.LongPressMS)
	v.Set("history.path", cfg.History.Path)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.homepage", cfg.UI.Homepage)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch calls onChange with the re-read configuration whenever the file at
// path changes. It returns false when there is no file to watch yet.
func Watch(path string, onChange func(Config, error)) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(decode(v))
	})
	v.WatchConfig()
	return true
}
