package ledger

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Account is the owning record of a ledger: credentials, budget and savings
// settings. A zero budget or goal means the setting is not configured.
type Account struct {
	username string
	password string

	monthlyBudget decimal.Decimal
	savingsGoal   decimal.Decimal
	horizon       Horizon

	ledger *Ledger
}

// NewAccount returns an account with an empty ledger and no settings.
func NewAccount(username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if err := ValidateID(username); err != nil {
		return nil, err
	}

	if strings.TrimSpace(password) == "" {
		return nil, ErrEmptyPassword
	}

	return &Account{
		username: username,
		password: password,
		ledger:   New(),
	}, nil
}

// RestoreAccount rebuilds a stored account. Unlike NewAccount it accepts
// whatever password was persisted, including an empty one.
func RestoreAccount(username, password string, entries ...Entry) (*Account, error) {
	if err := ValidateID(username); err != nil {
		return nil, err
	}

	return &Account{
		username: username,
		password: password,
		ledger:   New(entries...),
	}, nil
}

// ValidateID checks that id can name an account file: non-empty, no path
// separators or control characters, and not a relative path element.
func ValidateID(id string) error {
	if id == "" || id == "." || id == ".." {
		return ErrInvalidID
	}

	if strings.ContainsAny(id, `/\:`) {
		return ErrInvalidID
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return ErrInvalidID
		}
	}

	return nil
}

func (a *Account) Username() string { return a.username }

// Password returns the stored password. Comparing it is the caller's business.
func (a *Account) Password() string { return a.password }

func (a *Account) MonthlyBudget() decimal.Decimal { return a.monthlyBudget }
func (a *Account) SavingsGoal() decimal.Decimal   { return a.savingsGoal }
func (a *Account) Horizon() Horizon               { return a.horizon }

// SetMonthlyBudget sets the monthly expense ceiling. Zero unsets it.
func (a *Account) SetMonthlyBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return ErrNegativeValue
	}

	a.monthlyBudget = budget.Round(2)

	return nil
}

// SetSavingsGoal sets the target balance. Zero unsets it.
func (a *Account) SetSavingsGoal(goal decimal.Decimal) error {
	if goal.IsNegative() {
		return ErrNegativeValue
	}

	a.savingsGoal = goal.Round(2)

	return nil
}

// SetHorizon replaces the goal deadline, whatever its previous mode.
func (a *Account) SetHorizon(h Horizon) {
	a.horizon = h
}

// SetTargetDate switches the goal to a date deadline, dropping any month count.
func (a *Account) SetTargetDate(date time.Time) error {
	h, err := ByDate(date)
	if err != nil {
		return err
	}

	a.horizon = h

	return nil
}

// SetTargetMonths switches the goal to a month count, dropping any target date.
func (a *Account) SetTargetMonths(n int) error {
	h, err := ByMonths(n)
	if err != nil {
		return err
	}

	a.horizon = h

	return nil
}

func (a *Account) ClearTarget() {
	a.horizon = NoHorizon()
}

// AddEntry appends e to the ledger.
func (a *Account) AddEntry(e Entry) {
	a.ledger.Add(e)
}

// RemoveEntry deletes the first entry equal to e.
func (a *Account) RemoveEntry(e Entry) bool {
	return a.ledger.Remove(e)
}

// RemoveEntryAt deletes the entry at stored position i.
func (a *Account) RemoveEntryAt(i int) error {
	return a.ledger.RemoveAt(i)
}

// Entries returns a snapshot of the ledger in stored order.
func (a *Account) Entries() []Entry {
	return a.ledger.Entries()
}
