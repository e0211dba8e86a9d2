package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/app"
	"github.com/jask/tabdeck/internal/logx"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(submain(context.Background()))
}

func submain(ctx context.Context) int {
	logger := logx.New(os.Stderr, "info")
	ctx = pslog.ContextWithLogger(ctx, logger)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("tabdeck command failed", "err", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	config     string
	reversed   bool
	twoColumns bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:           "tabdeck",
		Short:         "Terminal browser shell with a tab and history switcher",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, &flags, app.StartHome)
		},
	}
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "path to config file")
	root.PersistentFlags().BoolVar(&flags.reversed, "reversed", false, "put the button bar at the bottom")
	root.PersistentFlags().BoolVar(&flags.twoColumns, "two-columns", true, "show tabs in two columns")

	root.AddCommand(newSettingsCmd(&flags))
	root.AddCommand(newHistoryCmd(&flags))
	root.AddCommand(newKeysCmd(&flags))
	root.AddCommand(newVersionCmd())
	return root
}
