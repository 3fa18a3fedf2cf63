package account

import (
	"time"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

type horizonResponse struct {
	Kind         string `json:"kind"`
	TargetDate   string `json:"target_date,omitempty"`
	TargetMonths int    `json:"target_months,omitempty"`
}

type accountResponse struct {
	Username      string          `json:"username"`
	MonthlyBudget string          `json:"monthly_budget"`
	SavingsGoal   string          `json:"savings_goal"`
	Horizon       horizonResponse `json:"horizon"`
	Entries       int             `json:"entries"`
}

type entryResponse struct {
	Index  int         `json:"index"`
	Type   ledger.Type `json:"type"`
	Name   string      `json:"name"`
	Amount string      `json:"amount"`
	Label  string      `json:"label"`
	Date   string      `json:"date"`
}

type budgetResponse struct {
	Amount      string `json:"amount"`
	Within      bool   `json:"within"`
	Difference  string `json:"difference"`
	UsedPercent string `json:"used_percent"`
	Warning     bool   `json:"warning"`
}

type savingsResponse struct {
	Goal            string          `json:"goal"`
	Horizon         horizonResponse `json:"horizon"`
	RequiredMonthly string          `json:"required_monthly"`
	ProgressPercent string          `json:"progress_percent"`
	Remaining       string          `json:"remaining"`
	OnTrack         bool            `json:"on_track"`
}

type summaryResponse struct {
	Username        string          `json:"username"`
	Date            string          `json:"date"`
	Entries         int             `json:"entries"`
	TotalIncome     string          `json:"total_income"`
	TotalExpenses   string          `json:"total_expenses"`
	Balance         string          `json:"balance"`
	MonthlyIncome   string          `json:"monthly_income"`
	MonthlyExpenses string          `json:"monthly_expenses"`
	Budget          budgetResponse  `json:"budget"`
	Savings         savingsResponse `json:"savings"`
}

type categoryResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type importResponse struct {
	Parsed   int `json:"parsed"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func toHorizonResponse(h ledger.Horizon) horizonResponse {
	resp := horizonResponse{Kind: h.Kind().String()}

	if d, ok := h.Date(); ok {
		resp.TargetDate = d.Format(time.DateOnly)
	}

	if n, ok := h.Months(); ok {
		resp.TargetMonths = n
	}

	return resp
}

func toAccountResponse(acc *ledger.Account) accountResponse {
	return accountResponse{
		Username:      acc.Username(),
		MonthlyBudget: acc.MonthlyBudget().StringFixed(2),
		SavingsGoal:   acc.SavingsGoal().StringFixed(2),
		Horizon:       toHorizonResponse(acc.Horizon()),
		Entries:       len(acc.Entries()),
	}
}

func toEntryResponse(index int, e ledger.Entry) entryResponse {
	return entryResponse{
		Index:  index,
		Type:   e.Type(),
		Name:   e.Name(),
		Amount: e.Amount().StringFixed(2),
		Label:  e.Label(),
		Date:   e.Date().Format(time.DateOnly),
	}
}

func toSummaryResponse(s *account.Summary) summaryResponse {
	return summaryResponse{
		Username:        s.Username,
		Date:            s.Today.Format(time.DateOnly),
		Entries:         s.Entries,
		TotalIncome:     s.TotalIncome.StringFixed(2),
		TotalExpenses:   s.TotalExpenses.StringFixed(2),
		Balance:         s.Balance.StringFixed(2),
		MonthlyIncome:   s.MonthlyIncome.StringFixed(2),
		MonthlyExpenses: s.MonthlyExpenses.StringFixed(2),
		Budget: budgetResponse{
			Amount:      s.MonthlyBudget.StringFixed(2),
			Within:      s.WithinBudget,
			Difference:  s.BudgetDifference.StringFixed(2),
			UsedPercent: s.BudgetUsedPercent.StringFixed(1),
			Warning:     s.BudgetWarning,
		},
		Savings: savingsResponse{
			Goal:            s.Savings.Goal.StringFixed(2),
			Horizon:         toHorizonResponse(s.Savings.Horizon),
			RequiredMonthly: s.Savings.RequiredMonthly.StringFixed(2),
			ProgressPercent: s.Savings.ProgressPercent.StringFixed(1),
			Remaining:       s.Savings.Remaining.StringFixed(2),
			OnTrack:         s.Savings.OnTrack,
		},
	}
}

func toCategoryResponses(totals []report.CategoryTotal) []categoryResponse {
	out := make([]categoryResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, categoryResponse{Category: t.Category, Total: t.Total.StringFixed(2)})
	}

	return out
}
