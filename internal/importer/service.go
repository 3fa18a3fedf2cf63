package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/tally/internal/importer/cgd"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

var ErrUnknownBank = fmt.Errorf("%w: unknown bank", ledger.ErrValidation)

type Service struct {
	importers map[Bank]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Bank]Importer{
			BankCGD: cgd.NewParser(),
		},
	}
}

// ParseBank reads a bank name as given on the command line or in a query string.
func ParseBank(s string) (Bank, error) {
	b := Bank(strings.ToLower(strings.TrimSpace(s)))
	if b == "" {
		return BankCGD, nil
	}

	if b != BankCGD {
		return "", fmt.Errorf("%w: %q", ErrUnknownBank, s)
	}

	return b, nil
}

// Import parses r as an export from bank.
func (s *Service) Import(bank Bank, r io.Reader, labels Labels) ([]ledger.Entry, error) {
	importer, ok := s.importers[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	labels = labels.withDefaults()

	entries, err := importer.Parse(r, labels.Category, labels.Source)
	if err != nil {
		if errors.Is(err, cgd.ErrUnknownFormat) {
			return nil, fmt.Errorf("%w: %w", ledger.ErrValidation, err)
		}

		return nil, fmt.Errorf("parsing %s export: %w", bank, err)
	}

	return entries, nil
}
