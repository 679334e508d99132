package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendwise/pkg/app"
	"spendwise/pkg/export"
	"spendwise/pkg/ledger"
)

var (
	exportUser     string
	exportPassword string
	exportFormat   string
	exportOutput   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's expenses and budgets to CSV, JSON, or YAML",
	RunE: func(_ *cobra.Command, _ []string) error {
		a := app.New(cfg, logger)
		if err := a.Login(exportUser, exportPassword); err != nil {
			return err
		}
		l, err := a.Ledger()
		if err != nil {
			return err
		}

		data, err := renderExport(l)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		logger.Info("exported data", "username", exportUser, "format", exportFormat, "output", exportOutput)
		return nil
	},
}

func renderExport(l *ledger.Ledger) ([]byte, error) {
	switch exportFormat {
	case "csv":
		filter, err := cliFilters.toFilterFunc()
		if err != nil {
			return nil, err
		}
		return export.CSV(l.All(ledger.SortByDate, false), filter)
	case "json":
		return export.JSON(export.Document{Username: l.Username(), Expenses: l.Expenses(), Budgets: l.Budgets()})
	case "yaml":
		return export.YAML(export.Document{Username: l.Username(), Expenses: l.Expenses(), Budgets: l.Budgets()})
	default:
		return nil, fmt.Errorf("unknown export format %q", exportFormat)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "Username to export")
	exportCmd.Flags().StringVarP(&exportPassword, "password", "p", "", "Password for the user")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format: csv, json, or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&cliFilters.category, "category", "", "Filter CSV rows by category")
	exportCmd.Flags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY-MM-DD)")
	exportCmd.Flags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	exportCmd.Flags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	_ = exportCmd.MarkFlagRequired("user")
	_ = exportCmd.MarkFlagRequired("password")
}
