package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/tabdeck/internal/core"
)

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the key bound to each action",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
			byAction := core.DefaultKeybindingsByAction(bindings)

			actions := make([]string, 0, len(byAction))
			for a := range byAction {
				actions = append(actions, a)
			}
			sort.Strings(actions)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range actions {
				fmt.Fprintf(w, "%s\t%s\n", a, strings.Join(byAction[a], ", "))
			}
			return w.Flush()
		},
	}
}
