package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

func entries(t *testing.T) []ledger.Entry {
	t.Helper()

	mk := func(typ ledger.Type, name, amt, label string, d int) ledger.Entry {
		e, err := ledger.NewEntry(typ, name, decimal.RequireFromString(amt), label, time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		return e
	}

	feb, err := ledger.NewExpense("Skipped", decimal.NewFromInt(1), "Misc", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return []ledger.Entry{
		mk(ledger.TypeIncome, "Paycheck", "1000", "Salary", 5),
		mk(ledger.TypeExpense, "Groceries, weekly", "300", "Food", 10),
		feb,
	}
}

func TestStatement(t *testing.T) {
	got := export.Statement(entries(t), report.Month{Year: 2024, Month: time.January}, report.NewFormatter("$"))

	want := `Statement 2024-01

* 2024-01-10 | Groceries, weekly | -$300.00 | Food
* 2024-01-05 | Paycheck | +$1000.00 | Salary

Income:   $1000.00
Expenses: $300.00
Net:      $700.00
`
	assert.Equal(t, want, got)
}

func TestStatement_EmptyMonth(t *testing.T) {
	got := export.Statement(entries(t), report.Month{Year: 2023, Month: time.March}, report.NewFormatter("€"))

	assert.Contains(t, got, "No entries.")
	assert.Contains(t, got, "Net:      €0.00")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, entries(t)[:2]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "type,name,amount,label,date", lines[0])
	assert.Equal(t, "Income,Paycheck,1000.00,Salary,2024-01-05", lines[1])
	assert.Equal(t, `Expense,"Groceries, weekly",300.00,Food,2024-01-10`, lines[2])
}

func TestSaveMonth(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := export.SaveMonth(dir, "alice", entries(t), report.Month{Year: 2024, Month: time.January}, report.NewFormatter(""))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "alice-2024-01.txt"), paths[0])

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
	assert.NotContains(t, string(data), "Skipped")
}

func TestSaveMonth_ReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alice-2024-01.csv"), 0o755))

	paths, err := export.SaveMonth(dir, "alice", entries(t), report.Month{Year: 2024, Month: time.January}, report.NewFormatter(""))
	require.Error(t, err)
	assert.Nil(t, paths)
}
