package report

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// SavingsProgressPercent is the balance as a share of goal, clamped to [0, 100].
func SavingsProgressPercent(entries []ledger.Entry, goal decimal.Decimal) decimal.Decimal {
	if goal.IsZero() {
		return decimal.Zero
	}

	balance := Balance(entries)
	if !balance.IsPositive() {
		return decimal.Zero
	}

	return decimal.Min(balance.Div(goal).Mul(hundred), hundred)
}

// RemainingForGoal is how much the balance still lacks to reach goal, never
// negative. A balance below zero counts as nothing saved, so the whole goal
// remains.
func RemainingForGoal(entries []ledger.Entry, goal decimal.Decimal) decimal.Decimal {
	saved := decimal.Max(Balance(entries), decimal.Zero)

	return decimal.Max(goal.Sub(saved), decimal.Zero)
}
