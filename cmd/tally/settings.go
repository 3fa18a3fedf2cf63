package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/cmd/tally/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

var (
	goalBy     string
	goalMonths int
)

var budgetCmd = &cobra.Command{
	Use:   "budget <amount>",
	Short: "Set the monthly budget. Zero clears it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		budget, err := ledger.ParseNonNegative(args[0])
		if err != nil {
			return err
		}

		if err := tally.accounts.SetMonthlyBudget(cmd.Context(), id, budget); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success("Monthly budget set to "+tally.formatter.Currency(budget)+"."))

		return nil
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal <amount>",
	Short: "Set the savings goal and, optionally, its deadline.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		goal, err := ledger.ParseNonNegative(args[0])
		if err != nil {
			return err
		}

		horizon := ledger.NoHorizon()

		switch {
		case goalBy != "":
			d, err := ledger.ParseDate(goalBy)
			if err != nil {
				return err
			}

			if horizon, err = ledger.ByDate(d); err != nil {
				return err
			}
		case cmd.Flags().Changed("months"):
			if horizon, err = ledger.ByMonths(goalMonths); err != nil {
				return err
			}
		}

		if err := tally.accounts.SetSavingsGoal(cmd.Context(), id, goal, horizon); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success(fmt.Sprintf("Savings goal set to %s %s.",
			tally.formatter.Currency(goal), horizon)))

		return nil
	},
}

func init() {
	goalCmd.Flags().StringVar(&goalBy, "by", "", "Target date, YYYY-MM-DD.")
	goalCmd.Flags().IntVar(&goalMonths, "months", 0, "Number of months to reach the goal.")
	goalCmd.MarkFlagsMutuallyExclusive("by", "months")

	rootCmd.AddCommand(budgetCmd, goalCmd)
}
