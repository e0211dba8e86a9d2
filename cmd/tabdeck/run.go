package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/app"
	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/config"
	"github.com/jask/tabdeck/internal/history"
	"github.com/jask/tabdeck/internal/logx"
	"github.com/jask/tabdeck/internal/resource"
)

func newSettingsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Open the settings screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags, app.StartSettings)
		},
	}
}

// loadConfig reads the config file and collects the flags given on the
// command line. The flags are returned apart so they are never saved.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, config.Overrides, string, error) {
	path := config.Path(flags.config)
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, config.Overrides{}, "", err
	}
	var ov config.Overrides
	if cmd.Flags().Changed("reversed") {
		ov.Reversed = &flags.reversed
	}
	if cmd.Flags().Changed("two-columns") {
		ov.TwoColumns = &flags.twoColumns
	}
	return cfg, ov, path, nil
}

func runUI(cmd *cobra.Command, flags *rootFlags, start app.Start) error {
	cfg, ov, path, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, closer, err := logx.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log = log.With("version", version)

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	catalog, err := resource.NewCatalog(cfg.UI.Language)
	if err != nil {
		return err
	}

	var a *app.App
	session := browser.NewSession(cfg.UI.Homepage, browser.WithVisitHook(func(tab browser.TabSummary) {
		a.RecordVisit(tab)
	}))
	a, err = app.New(app.Deps{
		Config:     cfg,
		ConfigPath: path,
		Overrides:  ov,
		Session:    session,
		History:    store,
		Catalog:    catalog,
		Logger:     log,
		Version:    version,
		Start:      start,
	})
	if err != nil {
		return err
	}
	session.Open("", false)

	p := tea.NewProgram(a.Model(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if !a.Watch(p.Send) {
		log.Debug("config file absent, live reload disabled", "path", path)
	}
	log.Info("tabdeck started", "config", path, "history", cfg.History.Path)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	pslog.Ctx(cmd.Context()).Debug("ui closed")
	return nil
}
