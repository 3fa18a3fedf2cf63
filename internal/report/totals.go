// Package report derives totals, budget status, goal progress and grouped
// views from a list of ledger entries. Every function is pure: callers pass
// the entries and, where a month matters, the date to treat as today.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

var hundred = decimal.NewFromInt(100)

func sum(entries []ledger.Entry, keep Predicate) decimal.Decimal {
	total := decimal.Zero

	for _, e := range entries {
		if keep(e) {
			total = total.Add(e.Amount())
		}
	}

	return total
}

func inMonthOf(t ledger.Type, today time.Time) Predicate {
	month := MonthOf(today)

	return func(e ledger.Entry) bool {
		return e.Type() == t && month.Contains(e.Date())
	}
}

// TotalIncome sums every income entry.
func TotalIncome(entries []ledger.Entry) decimal.Decimal {
	return sum(entries, ByType(ledger.TypeIncome))
}

// TotalExpenses sums every expense entry.
func TotalExpenses(entries []ledger.Entry) decimal.Decimal {
	return sum(entries, ByType(ledger.TypeExpense))
}

// Balance is total income minus total expenses.
func Balance(entries []ledger.Entry) decimal.Decimal {
	return TotalIncome(entries).Sub(TotalExpenses(entries))
}

// MonthlyExpenses sums the expenses dated in the same month as today.
func MonthlyExpenses(entries []ledger.Entry, today time.Time) decimal.Decimal {
	return sum(entries, inMonthOf(ledger.TypeExpense, today))
}

// MonthlyIncome sums the income dated in the same month as today.
func MonthlyIncome(entries []ledger.Entry, today time.Time) decimal.Decimal {
	return sum(entries, inMonthOf(ledger.TypeIncome, today))
}
