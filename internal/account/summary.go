package account

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

// Summary is everything the dashboard shows for one account on one day.
type Summary struct {
	Username string
	Today    time.Time
	Entries  int

	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal

	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal

	MonthlyBudget     decimal.Decimal
	WithinBudget      bool
	BudgetDifference  decimal.Decimal
	BudgetUsedPercent decimal.Decimal
	BudgetWarning     bool

	Savings savings.Plan
}

func (s *Service) Summarize(ctx context.Context, id string) (*Summary, error) {
	acc, err := s.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}

	return Summarize(acc, s.today(), s.warnPercent), nil
}

// Summarize computes the summary of acc as of today.
func Summarize(acc *ledger.Account, today time.Time, warnPercent int) *Summary {
	entries := acc.Entries()
	budget := acc.MonthlyBudget()

	return &Summary{
		Username: acc.Username(),
		Today:    today,
		Entries:  len(entries),

		TotalIncome:   report.TotalIncome(entries),
		TotalExpenses: report.TotalExpenses(entries),
		Balance:       report.Balance(entries),

		MonthlyIncome:   report.MonthlyIncome(entries, today),
		MonthlyExpenses: report.MonthlyExpenses(entries, today),

		MonthlyBudget:     budget,
		WithinBudget:      report.IsWithinBudget(entries, budget, today),
		BudgetDifference:  report.BudgetDifference(entries, budget, today),
		BudgetUsedPercent: report.BudgetUsedPercent(entries, budget, today),
		BudgetWarning:     report.NeedsBudgetWarning(entries, budget, today, warnPercent),

		Savings: savings.NewPlan(entries, acc.SavingsGoal(), acc.Horizon(), today),
	}
}
