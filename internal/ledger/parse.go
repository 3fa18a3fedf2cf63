package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a positive money amount typed by a user. Both "12.34"
// and "12,34" are accepted, with an optional leading "$".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil || !d.Round(2).IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// ParseNonNegative reads a budget or goal value. Zero is allowed and means unset.
func ParseNonNegative(s string) (decimal.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if d.IsNegative() {
		return decimal.Zero, ErrNegativeValue
	}

	return d, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", ".")

	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseDate reads an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// ParseType reads "income" or "expense" in any letter case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return TypeIncome, nil
	case "expense":
		return TypeExpense, nil
	}

	return "", ErrInvalidType
}

// ParseMonths reads a positive month count.
func ParseMonths(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrInvalidMonths
	}

	return n, nil
}
