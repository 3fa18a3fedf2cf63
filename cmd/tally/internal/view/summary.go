package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

// Summary renders the dashboard of an account: totals, the budget state and
// savings progress. Budget and savings sections are omitted while unset.
func Summary(s *account.Summary, f report.Formatter) string {
	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s · %s", s.Username, s.Today.Format(time.DateOnly))),
		"",
		field("Entries", fmt.Sprint(s.Entries)),
		field("Total income", f.Currency(s.TotalIncome)),
		field("Total expenses", f.Currency(s.TotalExpenses)),
		field("Balance", balance(s, f)),
		field("Income this month", f.Currency(s.MonthlyIncome)),
		field("Spent this month", f.Currency(s.MonthlyExpenses)),
	}

	if !s.MonthlyBudget.IsZero() {
		sections = append(sections, "", budget(s, f))
	}

	if s.Savings.Active() {
		sections = append(sections, "", savings(s, f))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...)) + "\n"
}

func balance(s *account.Summary, f report.Formatter) string {
	if s.Balance.IsNegative() {
		return errorStyle.Render(f.Currency(s.Balance))
	}

	return f.Currency(s.Balance)
}

func budget(s *account.Summary, f report.Formatter) string {
	var status string

	switch {
	case !s.WithinBudget:
		status = errorStyle.Render(fmt.Sprintf("over budget by %s", f.Currency(s.BudgetDifference)))
	case s.BudgetWarning:
		status = warningStyle.Render(fmt.Sprintf("%s used", f.Percent(s.BudgetUsedPercent)))
	default:
		status = okStyle.Render(fmt.Sprintf("%s left", f.Currency(s.BudgetDifference.Neg())))
	}

	return strings.Join([]string{
		titleStyle.Render("Budget"),
		field("Monthly budget", f.Currency(s.MonthlyBudget)),
		field("Status", status),
	}, "\n")
}

func savings(s *account.Summary, f report.Formatter) string {
	p := s.Savings

	pace := okStyle.Render("on track")
	if !p.OnTrack {
		pace = warningStyle.Render("behind")
	}

	lines := []string{
		titleStyle.Render("Savings"),
		field("Goal", f.Currency(p.Goal)+" "+p.Horizon.String()),
		field("Progress", f.Percent(p.ProgressPercent)),
		field("Remaining", f.Currency(p.Remaining)),
	}

	if !p.Horizon.IsZero() {
		lines = append(lines,
			field("Needed per month", f.Currency(p.RequiredMonthly)),
			field("Pace", pace),
		)
	}

	return strings.Join(lines, "\n")
}
