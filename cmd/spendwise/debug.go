package main

import (
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"spendwise/pkg/export"
	"spendwise/pkg/ledger"
)

// debugCmd dumps a user's parsed data file. Reads directly, no
// authentication: it is a local development aid, not a user surface.
var debugCmd = &cobra.Command{
	Use:    "debug <username>",
	Short:  "Pretty-print a user's parsed data file",
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE: func(_ *cobra.Command, args []string) error {
		l, err := ledger.New(args[0], cfg.DataDir, logger)
		if err != nil {
			return err
		}
		_, err = pp.Println(export.Document{
			Username: l.Username(),
			Expenses: l.Expenses(),
			Budgets:  l.Budgets(),
		})
		return err
	},
}
