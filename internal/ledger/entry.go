package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type tags the two kinds of money movement. The values double as the
// record tags of the account file format.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Valid reports whether t is one of the known entry types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Entry is one recorded money movement. Its fourth field is a source for
// income and a category for expenses. Entries are values: they carry no
// identity and cannot be changed once built.
type Entry struct {
	typ    Type
	name   string
	amount decimal.Decimal
	date   time.Time
	label  string
}

// NewIncome builds an income entry received from source.
func NewIncome(name string, amount decimal.Decimal, source string, date time.Time) (Entry, error) {
	return NewEntry(TypeIncome, name, amount, source, date)
}

// NewExpense builds an expense entry filed under category.
func NewExpense(name string, amount decimal.Decimal, category string, date time.Time) (Entry, error) {
	return NewEntry(TypeExpense, name, amount, category, date)
}

// NewEntry validates its arguments and builds an entry of the given type.
// The amount is rounded to cents and the date truncated to a calendar day.
func NewEntry(typ Type, name string, amount decimal.Decimal, label string, date time.Time) (Entry, error) {
	if !typ.Valid() {
		return Entry{}, ErrInvalidType
	}

	if strings.TrimSpace(name) == "" {
		return Entry{}, ErrEmptyName
	}

	if strings.TrimSpace(label) == "" {
		return Entry{}, ErrEmptyLabel
	}

	amount = amount.Round(2)
	if !amount.IsPositive() {
		return Entry{}, ErrInvalidAmount
	}

	if !validDate(date) {
		return Entry{}, ErrInvalidDate
	}

	return Entry{
		typ:    typ,
		name:   name,
		amount: amount,
		date:   DateOf(date),
		label:  label,
	}, nil
}

func (e Entry) Type() Type              { return e.typ }
func (e Entry) Name() string            { return e.name }
func (e Entry) Amount() decimal.Decimal { return e.amount }
func (e Entry) Date() time.Time         { return e.date }

// Label returns the category of an expense or the source of an income.
func (e Entry) Label() string { return e.label }

// Category returns the label of an expense, or "" for income.
func (e Entry) Category() string {
	if e.typ != TypeExpense {
		return ""
	}

	return e.label
}

// Source returns the label of an income, or "" for an expense.
func (e Entry) Source() string {
	if e.typ != TypeIncome {
		return ""
	}

	return e.label
}

// Signed returns the entry's contribution to the balance.
func (e Entry) Signed() decimal.Decimal {
	if e.typ == TypeExpense {
		return e.amount.Neg()
	}

	return e.amount
}

// Equal reports whether both entries hold the same values.
func (e Entry) Equal(other Entry) bool {
	return e.typ == other.typ &&
		e.name == other.name &&
		e.label == other.label &&
		e.amount.Equal(other.amount) &&
		e.date.Equal(other.date)
}
