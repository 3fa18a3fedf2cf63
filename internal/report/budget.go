package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// DefaultWarningPercent is the share of the budget at which spending is flagged.
const DefaultWarningPercent = 75

// IsWithinBudget reports whether this month's expenses stay at or under
// budget. An unset (zero) budget is never exceeded.
func IsWithinBudget(entries []ledger.Entry, budget decimal.Decimal, today time.Time) bool {
	if budget.IsZero() {
		return true
	}

	return MonthlyExpenses(entries, today).LessThanOrEqual(budget)
}

// BudgetDifference is this month's expenses minus budget: negative while
// under budget, positive once over it. Zero when no budget is set.
func BudgetDifference(entries []ledger.Entry, budget decimal.Decimal, today time.Time) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}

	return MonthlyExpenses(entries, today).Sub(budget)
}

// BudgetUsedPercent is this month's expenses as a percentage of budget.
// It is not capped, so overspending reads above 100.
func BudgetUsedPercent(entries []ledger.Entry, budget decimal.Decimal, today time.Time) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}

	return MonthlyExpenses(entries, today).Div(budget).Mul(hundred)
}

// NeedsBudgetWarning reports whether at least threshold percent of a
// configured budget has been spent this month.
func NeedsBudgetWarning(entries []ledger.Entry, budget decimal.Decimal, today time.Time, threshold int) bool {
	if budget.IsZero() {
		return false
	}

	return BudgetUsedPercent(entries, budget, today).GreaterThanOrEqual(decimal.NewFromInt(int64(threshold)))
}
