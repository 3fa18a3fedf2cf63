package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/cmd/tally/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

type app struct {
	cfg       *config.Config
	accounts  *account.Service
	importer  *importer.Service
	formatter report.Formatter
}

var (
	accountID string
	tally     *app
)

var errNoAccount = errors.New("no account given: pass --account")

var rootCmd = &cobra.Command{
	Use:           "tally",
	Short:         "Track income, expenses, a monthly budget and a savings goal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level, _ := cfg.LogLevel()
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		tally = &app{
			cfg: cfg,
			accounts: account.NewService(
				store.New(cfg.Storage.DataDir),
				account.WithWarningThreshold(cfg.Report.WarningPercent),
			),
			importer:  importer.NewService(),
			formatter: report.NewFormatter(cfg.Report.CurrencySymbol),
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&accountID, "account", "a", os.Getenv("TALLY_ACCOUNT"), "Account to operate on (default $TALLY_ACCOUNT).")
}

func requireAccount() (string, error) {
	if accountID == "" {
		return "", errNoAccount
	}

	return accountID, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, view.Error(err))
		os.Exit(1)
	}
}
