package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

// Plan is the state of a savings goal on a given day.
type Plan struct {
	Goal            decimal.Decimal
	Horizon         ledger.Horizon
	RequiredMonthly decimal.Decimal
	ProgressPercent decimal.Decimal
	Remaining       decimal.Decimal
	OnTrack         bool
}

func NewPlan(entries []ledger.Entry, goal decimal.Decimal, horizon ledger.Horizon, today time.Time) Plan {
	return Plan{
		Goal:            goal,
		Horizon:         horizon,
		RequiredMonthly: RequiredMonthly(goal, horizon, today),
		ProgressPercent: report.SavingsProgressPercent(entries, goal),
		Remaining:       report.RemainingForGoal(entries, goal),
		OnTrack:         IsOnTrack(entries, goal, horizon, today),
	}
}

// Active reports whether a goal has been set.
func (p Plan) Active() bool {
	return !p.Goal.IsZero()
}
