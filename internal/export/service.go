// Package export renders account entries as monthly statements and CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

var csvHeader = []string{"type", "name", "amount", "label", "date"}

// Statement renders the entries of month, newest first, one per line as
// "* date | name | ±amount | label", followed by the month's totals.
func Statement(entries []ledger.Entry, month report.Month, f report.Formatter) string {
	inMonth := report.SortByDateDesc(report.FilterByMonth(entries, month))

	var sb strings.Builder

	fmt.Fprintf(&sb, "Statement %s\n\n", month)

	if len(inMonth) == 0 {
		sb.WriteString("No entries.\n")
	}

	for _, e := range inMonth {
		sign := "-"
		if e.Type() == ledger.TypeIncome {
			sign = "+"
		}

		fmt.Fprintf(&sb, "* %s | %s | %s%s | %s\n",
			e.Date().Format(time.DateOnly), e.Name(), sign, f.Currency(e.Amount()), e.Label())
	}

	fmt.Fprintf(&sb, "\nIncome:   %s\n", f.Currency(report.TotalIncome(inMonth)))
	fmt.Fprintf(&sb, "Expenses: %s\n", f.Currency(report.TotalExpenses(inMonth)))
	fmt.Fprintf(&sb, "Net:      %s\n", f.Currency(report.Balance(inMonth)))

	return sb.String()
}

// WriteCSV writes entries in stored order with a header row.
func WriteCSV(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			string(e.Type()),
			e.Name(),
			e.Amount().StringFixed(2),
			e.Label(),
			e.Date().Format(time.DateOnly),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// SaveMonth writes the statement and CSV for one month of an account into
// dir as <id>-<YYYY-MM>.txt and .csv, and returns the paths written.
func SaveMonth(dir, id string, entries []ledger.Entry, month report.Month, f report.Formatter) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s-%s", id, month))

	txtPath := base + ".txt"
	if err := os.WriteFile(txtPath, []byte(Statement(entries, month, f)), 0o644); err != nil {
		return nil, fmt.Errorf("writing statement: %w", err)
	}

	csvPath := base + ".csv"

	file, err := os.Create(csvPath)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	if err := WriteCSV(file, report.FilterByMonth(entries, month)); err != nil {
		_ = file.Close()
		return nil, err
	}

	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", csvPath, err)
	}

	return []string{txtPath, csvPath}, nil
}
