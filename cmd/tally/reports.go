package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/cmd/tally/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

var (
	reportMonth  string
	statementOut string
)

// month reads --month, defaulting to the current month.
func month() (report.Month, error) {
	if reportMonth == "" {
		return report.MonthOf(time.Now()), nil
	}

	return report.ParseMonth(reportMonth)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance, budget and savings progress.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		s, err := tally.accounts.Summarize(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), view.Summary(s, tally.formatter))

		return nil
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show expense totals per category.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		acc, err := tally.accounts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		entries := acc.Entries()

		if reportMonth != "" {
			m, err := report.ParseMonth(reportMonth)
			if err != nil {
				return err
			}

			entries = report.FilterByMonth(entries, m)
		}

		fmt.Fprint(cmd.OutOrStdout(), view.Breakdown(report.SortedBreakdown(entries), tally.formatter))

		return nil
	},
}

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List the months that have entries.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		acc, err := tally.accounts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		for _, m := range report.AvailableMonths(acc.Entries()) {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}

		return nil
	},
}

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print a monthly statement, or save it with --out.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		m, err := month()
		if err != nil {
			return err
		}

		acc, err := tally.accounts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		if statementOut == "" {
			fmt.Fprint(cmd.OutOrStdout(), export.Statement(acc.Entries(), m, tally.formatter))
			return nil
		}

		paths, err := export.SaveMonth(statementOut, id, acc.Entries(), m, tally.formatter)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success("Wrote "+strings.Join(paths, ", ")+"."))

		return nil
	},
}

func init() {
	breakdownCmd.Flags().StringVar(&reportMonth, "month", "", "Only expenses of this month, YYYY-MM.")
	statementCmd.Flags().StringVar(&reportMonth, "month", "", "Statement month, YYYY-MM (default current month).")
	statementCmd.Flags().StringVarP(&statementOut, "out", "o", "", "Directory to save the statement and CSV into.")

	rootCmd.AddCommand(summaryCmd, breakdownCmd, monthsCmd, statementCmd)
}
