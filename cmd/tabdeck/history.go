package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jask/tabdeck/internal/history"
	"github.com/jask/tabdeck/internal/logx"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recently visited pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if limit <= 0 {
				limit = cfg.History.Limit
			}
			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				when := humanize.Time(time.UnixMilli(e.Timestamp))
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, when, e.Title, e.URL)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries (default: history.limit)")
	cmd.AddCommand(newHistoryClearCmd(flags))
	return cmd
}

func newHistoryClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if err := store.DeleteAll(cmd.Context()); err != nil {
				return err
			}
			logx.Ctx(cmd.Context()).Info("history cleared", "path", cfg.History.Path)
			return nil
		},
	}
}
