// Package savings projects how much must be put aside each month to reach a
// savings goal and whether the ledger is keeping pace.
package savings

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

// paceTolerance is the share of the expected savings that still counts as on track.
var paceTolerance = decimal.RequireFromString("0.9")

// RequiredMonthly is the amount to save each month to reach goal within
// horizon. A target date in the current month or earlier leaves no months to
// spread over, so the whole goal is due now. Without a horizon nothing is
// required.
func RequiredMonthly(goal decimal.Decimal, horizon ledger.Horizon, today time.Time) decimal.Decimal {
	if target, ok := horizon.Date(); ok {
		months := ledger.MonthsBetween(ledger.FirstOfMonth(today), ledger.FirstOfMonth(target))
		if months <= 0 {
			return goal
		}

		return goal.Div(decimal.NewFromInt(int64(months)))
	}

	if n, ok := horizon.Months(); ok {
		return goal.Div(decimal.NewFromInt(int64(n)))
	}

	return decimal.Zero
}

// MonthsElapsed counts the months of history from the earliest entry up to
// and including today's month. Never less than one.
func MonthsElapsed(entries []ledger.Entry, today time.Time) int {
	if len(entries) == 0 {
		return 1
	}

	earliest := slices.MinFunc(entries, func(a, b ledger.Entry) int {
		return a.Date().Compare(b.Date())
	}).Date()

	return max(ledger.MonthsBetween(earliest, today)+1, 1)
}

// IsOnTrack reports whether savings are keeping pace with the goal.
//
// With a target date the whole balance is compared against what should have
// been saved over the months elapsed so far. With a month count this month's
// net savings are compared against one month's requirement. Either way a
// 10% shortfall is tolerated. Without a goal or a horizon there is nothing to
// be on track for.
func IsOnTrack(entries []ledger.Entry, goal decimal.Decimal, horizon ledger.Horizon, today time.Time) bool {
	if goal.IsZero() {
		return false
	}

	required := RequiredMonthly(goal, horizon, today)

	switch horizon.Kind() {
	case ledger.HorizonDate:
		elapsed := decimal.NewFromInt(int64(MonthsElapsed(entries, today)))
		expected := required.Mul(elapsed).Mul(paceTolerance)

		return report.Balance(entries).GreaterThanOrEqual(expected)
	case ledger.HorizonMonths:
		saved := report.MonthlyIncome(entries, today).Sub(report.MonthlyExpenses(entries, today))

		return saved.GreaterThanOrEqual(required.Mul(paceTolerance))
	}

	return false
}
