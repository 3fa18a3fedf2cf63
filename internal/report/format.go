package report

import "github.com/shopspring/decimal"

const DefaultSymbol = "$"

// Formatter renders amounts for display.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a formatter using symbol, or DefaultSymbol when empty.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}

	return Formatter{Symbol: symbol}
}

// Currency prefixes the symbol to the amount with two decimals. The sign
// follows the symbol, as in "$-50.00".
func (f Formatter) Currency(d decimal.Decimal) string {
	return f.Symbol + d.StringFixed(2)
}

// Percent renders a percentage with one decimal.
func (f Formatter) Percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatCurrency formats d with the default symbol.
func FormatCurrency(d decimal.Decimal) string {
	return NewFormatter(DefaultSymbol).Currency(d)
}
