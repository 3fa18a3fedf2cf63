package view

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

// IndexedEntry is an entry together with its stored position, which is what
// the remove command takes.
type IndexedEntry struct {
	Index int
	Entry ledger.Entry
}

// Entries renders entries in the order given.
func Entries(entries []IndexedEntry, f report.Formatter) string {
	if len(entries) == 0 {
		return "No entries.\n"
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Name", Width: 30},
		{Title: "Amount", Width: 14},
		{Title: "Label", Width: 20},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, ie := range entries {
		e := ie.Entry
		rows = append(rows, table.Row{
			strconv.Itoa(ie.Index),
			e.Date().Format(time.DateOnly),
			string(e.Type()),
			e.Name(),
			f.Currency(e.Signed()),
			e.Label(),
		})
	}

	return render(columns, rows) + "\n"
}

// Breakdown renders expense totals per category.
func Breakdown(totals []report.CategoryTotal, f report.Formatter) string {
	if len(totals) == 0 {
		return "No expenses.\n"
	}

	columns := []table.Column{
		{Title: "Category", Width: 24},
		{Title: "Total", Width: 14},
	}

	rows := make([]table.Row, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, table.Row{t.Category, f.Currency(t.Total)})
	}

	return render(columns, rows) + "\n"
}
