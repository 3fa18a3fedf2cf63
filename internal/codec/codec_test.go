package codec_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/codec"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func entry(t *testing.T, typ ledger.Type, name, amt, label string, when time.Time) ledger.Entry {
	t.Helper()

	e, err := ledger.NewEntry(typ, name, decimal.RequireFromString(amt), label, when)
	require.NoError(t, err)

	return e
}

func roundTrip(t *testing.T, acc *ledger.Account) *ledger.Account {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, acc))

	got, err := codec.Decode(&buf, acc.Username())
	require.NoError(t, err)

	return got
}

func assertSameEntries(t *testing.T, want, got []ledger.Entry) {
	t.Helper()

	require.Len(t, got, len(want))

	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "entry %d: want %+v, got %+v", i, want[i], got[i])
	}
}

func TestEncode_Format(t *testing.T) {
	acc, err := ledger.NewAccount("alice", "secret")
	require.NoError(t, err)
	require.NoError(t, acc.SetMonthlyBudget(decimal.NewFromInt(500)))
	require.NoError(t, acc.SetSavingsGoal(decimal.RequireFromString("1000.5")))
	require.NoError(t, acc.SetTargetDate(day(2025, 6, 1)))
	acc.AddEntry(entry(t, ledger.TypeIncome, "Paycheck", "1000", "Salary", day(2024, 1, 5)))
	acc.AddEntry(entry(t, ledger.TypeExpense, "Groceries", "300", "Food", day(2024, 1, 10)))

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, acc))

	want := strings.Join([]string{
		"USERNAME:alice",
		"PASSWORD:secret",
		"BUDGET:500.00",
		"SAVINGS_GOAL:1000.50",
		"SAVINGS_TARGET_DATE:2025-06-01",
		"TRANSACTIONS_START",
		"Income|Paycheck|1000.00|Salary|2024-01-05",
		"Expense|Groceries|300.00|Food|2024-01-10",
		"TRANSACTIONS_END",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	acc, err := ledger.NewAccount("bob", "hunter2")
	require.NoError(t, err)
	require.NoError(t, acc.SetMonthlyBudget(decimal.RequireFromString("750.25")))
	require.NoError(t, acc.SetSavingsGoal(decimal.NewFromInt(3000)))
	require.NoError(t, acc.SetTargetMonths(18))

	for i := range 25 {
		when := day(2023, 1+i%12, 1+i)
		if i%3 == 0 {
			acc.AddEntry(entry(t, ledger.TypeIncome, "Job", "1234.56", "Salary", when))
		} else {
			acc.AddEntry(entry(t, ledger.TypeExpense, "Shop", "12.3", "Misc", when))
		}
	}

	got := roundTrip(t, acc)

	assert.Equal(t, "bob", got.Username())
	assert.Equal(t, "hunter2", got.Password())
	assert.True(t, acc.MonthlyBudget().Equal(got.MonthlyBudget()))
	assert.True(t, acc.SavingsGoal().Equal(got.SavingsGoal()))
	assert.Equal(t, acc.Horizon(), got.Horizon())
	assertSameEntries(t, acc.Entries(), got.Entries())
}

func TestRoundTrip_Escaping(t *testing.T) {
	acc, err := ledger.NewAccount("carol", "pa|ss\\word")
	require.NoError(t, err)

	acc.AddEntry(entry(t, ledger.TypeExpense, "Pipes | and \\ slashes", "9.99", "Home|Garden", day(2024, 2, 2)))
	acc.AddEntry(entry(t, ledger.TypeIncome, "Two\nlines", "1", "Side\r\njob", day(2024, 2, 3)))

	got := roundTrip(t, acc)

	assert.Equal(t, "pa|ss\\word", got.Password())
	assertSameEntries(t, acc.Entries(), got.Entries())
}

func TestRoundTrip_BoundaryYears(t *testing.T) {
	acc, err := ledger.NewAccount("alice", "secret")
	require.NoError(t, err)
	require.NoError(t, acc.SetTargetDate(day(9999, 12, 31)))
	acc.AddEntry(entry(t, ledger.TypeIncome, "Old", "1", "Archive", day(1, 1, 2)))
	acc.AddEntry(entry(t, ledger.TypeExpense, "Far", "2", "Future", day(9999, 12, 31)))

	got := roundTrip(t, acc)

	assertSameEntries(t, acc.Entries(), got.Entries())

	target, ok := got.Horizon().Date()
	require.True(t, ok)
	assert.Equal(t, day(9999, 12, 31), target)
}

func TestRoundTrip_Empty(t *testing.T) {
	acc, err := ledger.NewAccount("dave", "pw")
	require.NoError(t, err)

	got := roundTrip(t, acc)

	assert.Empty(t, got.Entries())
	assert.True(t, got.MonthlyBudget().IsZero())
	assert.True(t, got.Horizon().IsZero())
}

func TestDecode_Tolerant(t *testing.T) {
	input := strings.Join([]string{
		"USERNAME:someone-else",
		"PASSWORD:pw",
		"THEME:dark",
		"BUDGET:-20",
		"SAVINGS_GOAL:100",
		"SAVINGS_TARGET_MONTHS:6",
		"SAVINGS_TARGET_DATE:2025-06-01",
		"",
		"TRANSACTIONS_START",
		`Expense|Backup C:\temp|5.00|IT|2024-01-01`,
		"Income|Gift|20.00|Family|2024-01-02",
	}, "\r\n")

	acc, err := codec.Decode(strings.NewReader(input), "erin")
	require.NoError(t, err)

	assert.Equal(t, "erin", acc.Username())
	assert.True(t, acc.MonthlyBudget().IsZero())
	assert.Equal(t, "100", acc.SavingsGoal().String())

	target, isDate := acc.Horizon().Date()
	assert.True(t, isDate)
	assert.Equal(t, day(2025, 6, 1), target)

	entries := acc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, `Backup C:\temp`, entries[0].Name())
	assert.Equal(t, "Family", entries[1].Source())
}

func TestDecode_IgnoresBadTargets(t *testing.T) {
	input := "PASSWORD:pw\nSAVINGS_TARGET_DATE:someday\nSAVINGS_TARGET_MONTHS:-4\n"

	acc, err := codec.Decode(strings.NewReader(input), "frank")
	require.NoError(t, err)
	assert.True(t, acc.Horizon().IsZero())

	input = "PASSWORD:pw\nSAVINGS_TARGET_DATE:bad\nSAVINGS_TARGET_MONTHS:3\n"

	acc, err = codec.Decode(strings.NewReader(input), "frank")
	require.NoError(t, err)

	n, ok := acc.Horizon().Months()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{
			name:  "MissingPassword",
			input: "USERNAME:x\nTRANSACTIONS_START\nTRANSACTIONS_END\n",
		},
		{
			name:     "BudgetNotANumber",
			input:    "PASSWORD:pw\nBUDGET:lots\n",
			wantLine: "line 2",
		},
		{
			name:     "WrongFieldCount",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nExpense|a|1.00|b\n",
			wantLine: "line 3",
		},
		{
			name:     "UnescapedPipe",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nExpense|a|b|1.00|c|2024-01-01\n",
			wantLine: "line 3",
		},
		{
			name:     "UnknownTag",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nTransfer|a|1.00|b|2024-01-01\n",
			wantLine: "line 3",
		},
		{
			name:     "BadAmount",
			input:    "PASSWORD:pw\n\nTRANSACTIONS_START\nIncome|a|x|b|2024-01-01\n",
			wantLine: "line 4",
		},
		{
			name:     "NegativeAmount",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nIncome|a|-1.00|b|2024-01-01\n",
			wantLine: "line 3",
		},
		{
			name:     "BadDate",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nIncome|a|1.00|b|01/02/2024\n",
			wantLine: "line 3",
		},
		{
			name:     "EmptyLabel",
			input:    "PASSWORD:pw\nTRANSACTIONS_START\nExpense|a|1.00||2024-01-01\n",
			wantLine: "line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(strings.NewReader(tt.input), "user")
			require.ErrorIs(t, err, codec.ErrCorrupt)

			if tt.wantLine != "" {
				assert.Contains(t, err.Error(), tt.wantLine)
			}
		})
	}
}

func TestDecode_InvalidID(t *testing.T) {
	_, err := codec.Decode(strings.NewReader("PASSWORD:pw\n"), "../x")
	assert.ErrorIs(t, err, ledger.ErrInvalidID)
}
