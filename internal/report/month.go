package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

var ErrInvalidMonth = fmt.Errorf("%w: month must be YYYY-MM", ledger.ErrValidation)

// Month is a calendar month, the unit of budgets and statements.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth reads a month in YYYY-MM form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether t falls inside m.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// First returns the first day of m.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of m.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after o.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year, m.Year == o.Year && m.Month < o.Month:
		return -1
	case m == o:
		return 0
	}

	return 1
}
