package cgd

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// layout names the columns of one CGD export and knows how its amount
// columns map onto an income or an expense entry.
type layout struct {
	name string
	date string
	desc string

	// signed holds one column where negative values are expenses.
	signed string
	// debit and credit hold unsigned expense and income columns.
	debit  string
	credit string
}

func (l layout) columns() []string {
	if l.signed != "" {
		return []string{l.date, l.desc, l.signed}
	}

	return []string{l.date, l.desc, l.debit, l.credit}
}

// movement reads the entry type and positive amount of a row. Rows with no
// non-zero amount report false.
func (l layout) movement(cell func(col string) string) (ledger.Type, decimal.Decimal, bool) {
	if l.signed != "" {
		d, ok := nonZero(cell(l.signed))
		switch {
		case !ok:
			return "", decimal.Zero, false
		case d.IsNegative():
			return ledger.TypeExpense, d.Neg(), true
		default:
			return ledger.TypeIncome, d, true
		}
	}

	if d, ok := nonZero(cell(l.debit)); ok {
		return ledger.TypeExpense, d.Abs(), true
	}

	if d, ok := nonZero(cell(l.credit)); ok {
		return ledger.TypeIncome, d.Abs(), true
	}

	return "", decimal.Zero, false
}

// label picks the category for expenses and the source for income.
func label(typ ledger.Type, category, source string) string {
	if typ == ledger.TypeIncome {
		return source
	}

	return category
}

func nonZero(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseEuropeanAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}

	return d, true
}

// Card exports are matched first; their header is a subset of no other.
var layouts = []layout{
	{name: "cartão", date: "Data", desc: "Descrição", debit: "Débito", credit: "Crédito"},
	{name: "extrato", date: "Data mov.", desc: "Descrição", signed: "Movimento"},
	{name: "conta", date: "Data mov.", desc: "Descrição", signed: "Montante"},
}
