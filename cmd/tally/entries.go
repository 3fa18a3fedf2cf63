package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/cmd/tally/internal/view"
	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

var (
	listCategory string
	listType     string
	listFrom     string
	listTo       string
	listMonth    string

	addLabel string
	addDate  string

	importBank     string
	importCategory string
	importSource   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		preds, err := listFilters()
		if err != nil {
			return err
		}

		acc, err := tally.accounts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		var rows []view.IndexedEntry
		for i, e := range acc.Entries() {
			if report.Match(e, preds...) {
				rows = append(rows, view.IndexedEntry{Index: i, Entry: e})
			}
		}

		slices.SortStableFunc(rows, func(a, b view.IndexedEntry) int {
			return report.NewestFirst(a.Entry, b.Entry)
		})

		fmt.Fprint(cmd.OutOrStdout(), view.Entries(rows, tally.formatter))

		return nil
	},
}

func listFilters() ([]report.Predicate, error) {
	var preds []report.Predicate

	if listCategory != "" {
		preds = append(preds, report.ByCategory(listCategory))
	}

	if listType != "" {
		t, err := ledger.ParseType(listType)
		if err != nil {
			return nil, err
		}

		preds = append(preds, report.ByType(t))
	}

	if listFrom != "" || listTo != "" {
		var start, end time.Time

		if listFrom != "" {
			d, err := ledger.ParseDate(listFrom)
			if err != nil {
				return nil, err
			}

			start = d
		}

		if listTo != "" {
			d, err := ledger.ParseDate(listTo)
			if err != nil {
				return nil, err
			}

			end = d
		}

		preds = append(preds, report.ByDateRange(start, end))
	}

	if listMonth != "" {
		m, err := report.ParseMonth(listMonth)
		if err != nil {
			return nil, err
		}

		preds = append(preds, report.ByMonth(m))
	}

	return preds, nil
}

var addCmd = &cobra.Command{
	Use:   "add <income|expense> <name> <amount>",
	Short: "Record an income or an expense.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		typ, err := ledger.ParseType(args[0])
		if err != nil {
			return err
		}

		amount, err := ledger.ParseAmount(args[2])
		if err != nil {
			return err
		}

		params := account.EntryParams{Type: typ, Name: args[1], Amount: amount, Label: addLabel}

		if addDate != "" {
			if params.Date, err = ledger.ParseDate(addDate); err != nil {
				return err
			}
		}

		e, index, err := tally.accounts.AddEntry(cmd.Context(), id, params)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success(fmt.Sprintf("Added %s %q of %s on %s as #%d.",
			e.Type(), e.Name(), tally.formatter.Currency(e.Amount()), e.Date().Format(time.DateOnly), index)))

		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the entry at the index shown by list.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return ledger.ErrIndexOutOfRange
		}

		e, err := tally.accounts.RemoveEntry(cmd.Context(), id, index)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success(fmt.Sprintf("Removed %s %q.", e.Type(), e.Name())))

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a bank statement export.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireAccount()
		if err != nil {
			return err
		}

		bank, err := importer.ParseBank(importBank)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening statement: %w", err)
		}
		defer f.Close()

		entries, err := tally.importer.Import(bank, f, importer.Labels{Category: importCategory, Source: importSource})
		if err != nil {
			return err
		}

		added, err := tally.accounts.Import(cmd.Context(), id, entries)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success(fmt.Sprintf("Imported %d of %d entries (%d duplicates skipped).",
			added, len(entries), len(entries)-added)))

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only expenses in this category.")
	listCmd.Flags().StringVar(&listType, "type", "", "Only income or expense entries.")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date, YYYY-MM-DD.")
	listCmd.Flags().StringVar(&listTo, "to", "", "Latest date, YYYY-MM-DD.")
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only entries of this month, YYYY-MM.")

	addCmd.Flags().StringVarP(&addLabel, "label", "l", "", "Category of an expense or source of an income.")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Entry date, YYYY-MM-DD (default today).")
	_ = addCmd.MarkFlagRequired("label")

	importCmd.Flags().StringVar(&importBank, "bank", string(importer.BankCGD), "Bank the statement was exported from.")
	importCmd.Flags().StringVar(&importCategory, "category", "", "Category for imported expenses.")
	importCmd.Flags().StringVar(&importSource, "source", "", "Source for imported income.")

	rootCmd.AddCommand(listCmd, addCmd, removeCmd, importCmd)
}
