package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"spendwise/pkg/app"
	"spendwise/pkg/config"
)

var (
	cfgFile    string
	verbose    bool
	cliFilters filters

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spendwise",
	Short: "Track expenses and budgets from your terminal",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "spendwise",
			Level:           log.WarnLevel,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Build(cfgFile, cmd.Flags())
		return err
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMenu(app.New(cfg, logger))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is spendwise.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "user_data", "Directory holding per-user data files")
	rootCmd.PersistentFlags().StringVar(&flagUsersFile, "users-file", "users.json", "Path to the shared credentials file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(debugCmd)
}

// Flag targets for the config binder; the resolved values live in cfg.
var (
	flagDataDir   string
	flagUsersFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
