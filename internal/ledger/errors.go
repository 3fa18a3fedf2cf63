package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every input or invariant violation raised by this package.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidType     = fmt.Errorf("%w: type must be Income or Expense", ErrValidation)
	ErrEmptyName       = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmptyLabel      = fmt.Errorf("%w: category or source is required", ErrValidation)
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrInvalidDate     = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	ErrNegativeValue   = fmt.Errorf("%w: value must not be negative", ErrValidation)
	ErrInvalidMonths   = fmt.Errorf("%w: month count must be a positive integer", ErrValidation)
	ErrIndexOutOfRange = fmt.Errorf("%w: entry index out of range", ErrValidation)
	ErrInvalidID       = fmt.Errorf("%w: invalid account id", ErrValidation)
	ErrEmptyPassword   = fmt.Errorf("%w: password is required", ErrValidation)
)
