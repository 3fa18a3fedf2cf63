package report

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// CategoryTotal is the amount spent under one expense category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryBreakdown totals expenses per category. Income is ignored.
func CategoryBreakdown(entries []ledger.Entry) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)

	for _, e := range entries {
		if e.Type() != ledger.TypeExpense {
			continue
		}

		out[e.Category()] = out[e.Category()].Add(e.Amount())
	}

	return out
}

// SortedBreakdown is CategoryBreakdown ordered by total, largest first, with
// ties broken by category name.
func SortedBreakdown(entries []ledger.Entry) []CategoryTotal {
	totals := CategoryBreakdown(entries)

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}

	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}

		return strings.Compare(a.Category, b.Category)
	})

	return out
}

// AvailableMonths lists the distinct months that have entries, oldest first.
func AvailableMonths(entries []ledger.Entry) []Month {
	seen := make(map[Month]struct{})
	out := make([]Month, 0)

	for _, e := range entries {
		m := MonthOf(e.Date())
		if _, ok := seen[m]; ok {
			continue
		}

		seen[m] = struct{}{}
		out = append(out, m)
	}

	slices.SortFunc(out, Month.Compare)

	return out
}
