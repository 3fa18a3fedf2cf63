// Package codec reads and writes the line-oriented text format an account is
// persisted in:
//
//	USERNAME:alice
//	PASSWORD:secret
//	BUDGET:500.00
//	SAVINGS_GOAL:1000.00
//	SAVINGS_TARGET_DATE:2025-06-01
//	TRANSACTIONS_START
//	Income|Paycheck|1000.00|Salary|2024-01-05
//	Expense|Groceries|300.00|Food|2024-01-10
//	TRANSACTIONS_END
//
// SAVINGS_TARGET_MONTHS:<n> replaces SAVINGS_TARGET_DATE when the goal has a
// month count instead of a date. Free text is escaped with backslashes so
// that pipes and line breaks survive.
package codec

import (
	"errors"
	"fmt"
)

const (
	keyUsername     = "USERNAME"
	keyPassword     = "PASSWORD"
	keyBudget       = "BUDGET"
	keySavingsGoal  = "SAVINGS_GOAL"
	keyTargetDate   = "SAVINGS_TARGET_DATE"
	keyTargetMonths = "SAVINGS_TARGET_MONTHS"

	blockStart = "TRANSACTIONS_START"
	blockEnd   = "TRANSACTIONS_END"

	recordFields = 5
)

// ErrCorrupt is returned when stored account data cannot be read back.
var ErrCorrupt = errors.New("corrupt account data")

func corrupt(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrCorrupt, line, fmt.Sprintf(format, args...))
}
