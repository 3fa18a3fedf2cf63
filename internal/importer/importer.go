// Package importer converts bank statement exports into ledger entries.
package importer

import (
	"io"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Bank string

const (
	BankCGD Bank = "cgd"
)

// DefaultLabel files imported entries when the caller gives no category or source.
const DefaultLabel = "Imported"

type Importer interface {
	Parse(r io.Reader, category, source string) ([]ledger.Entry, error)
}

// Labels are attached to imported entries: Category to debits, Source to credits.
type Labels struct {
	Category string
	Source   string
}

func (l Labels) withDefaults() Labels {
	if l.Category == "" {
		l.Category = DefaultLabel
	}

	if l.Source == "" {
		l.Source = DefaultLabel
	}

	return l
}
