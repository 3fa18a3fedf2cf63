package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewEntry(t *testing.T) {
	type args struct {
		typ    ledger.Type
		name   string
		amount decimal.Decimal
		label  string
		date   time.Time
	}

	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "Income",
			args: args{ledger.TypeIncome, "Paycheck", amount("1000"), "Salary", date(2024, 1, 5)},
		},
		{
			name: "Expense",
			args: args{ledger.TypeExpense, "Groceries", amount("42.10"), "Food", date(2024, 1, 10)},
		},
		{
			name:    "UnknownType",
			args:    args{ledger.Type("Transfer"), "x", amount("1"), "y", date(2024, 1, 1)},
			wantErr: ledger.ErrInvalidType,
		},
		{
			name:    "BlankName",
			args:    args{ledger.TypeIncome, "   ", amount("1"), "Salary", date(2024, 1, 1)},
			wantErr: ledger.ErrEmptyName,
		},
		{
			name:    "BlankLabel",
			args:    args{ledger.TypeExpense, "Lunch", amount("1"), "", date(2024, 1, 1)},
			wantErr: ledger.ErrEmptyLabel,
		},
		{
			name:    "ZeroAmount",
			args:    args{ledger.TypeExpense, "Lunch", decimal.Zero, "Food", date(2024, 1, 1)},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "NegativeAmount",
			args:    args{ledger.TypeExpense, "Lunch", amount("-3"), "Food", date(2024, 1, 1)},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "RoundsToZero",
			args:    args{ledger.TypeExpense, "Lunch", amount("0.004"), "Food", date(2024, 1, 1)},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "LastFourDigitYear",
			args: args{ledger.TypeIncome, "Gift", amount("5"), "Family", date(9999, 12, 31)},
		},
		{
			name: "FirstYear",
			args: args{ledger.TypeIncome, "Gift", amount("5"), "Family", date(1, 1, 2)},
		},
		{
			name:    "YearAfter9999",
			args:    args{ledger.TypeIncome, "Gift", amount("5"), "Family", date(10000, 1, 1)},
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name:    "YearBeforeOne",
			args:    args{ledger.TypeIncome, "Gift", amount("5"), "Family", date(0, 12, 31)},
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name:    "ZeroDate",
			args:    args{ledger.TypeIncome, "Gift", amount("5"), "Family", time.Time{}},
			wantErr: ledger.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ledger.NewEntry(tt.args.typ, tt.args.name, tt.args.amount, tt.args.label, tt.args.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ledger.ErrValidation)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.args.typ, e.Type())
			assert.Equal(t, tt.args.name, e.Name())
			assert.True(t, tt.args.amount.Equal(e.Amount()))
			assert.Equal(t, tt.args.label, e.Label())
			assert.Equal(t, tt.args.date, e.Date())
		})
	}
}

func TestEntry_Normalization(t *testing.T) {
	local := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("X", 5*3600))

	e, err := ledger.NewExpense("Taxi", amount("12.345"), "Transport", local)
	require.NoError(t, err)

	assert.Equal(t, "12.35", e.Amount().StringFixed(2))
	assert.Equal(t, date(2024, 3, 9), e.Date())
}

func TestEntry_Labels(t *testing.T) {
	in, err := ledger.NewIncome("Paycheck", amount("1000"), "Salary", date(2024, 1, 5))
	require.NoError(t, err)

	out, err := ledger.NewExpense("Groceries", amount("300"), "Food", date(2024, 1, 10))
	require.NoError(t, err)

	assert.Equal(t, "Salary", in.Source())
	assert.Empty(t, in.Category())
	assert.Equal(t, "Food", out.Category())
	assert.Empty(t, out.Source())

	assert.Equal(t, "1000", in.Signed().String())
	assert.Equal(t, "-300", out.Signed().String())
}

func TestEntry_Equal(t *testing.T) {
	a, _ := ledger.NewExpense("Coffee", amount("3.5"), "Food", date(2024, 2, 1))
	b, _ := ledger.NewExpense("Coffee", amount("3.50"), "Food", date(2024, 2, 1))
	c, _ := ledger.NewExpense("Coffee", amount("3.50"), "Drinks", date(2024, 2, 1))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
