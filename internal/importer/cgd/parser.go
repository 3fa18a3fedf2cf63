// Package cgd reads the CSV exports of Caixa Geral de Depósitos accounts,
// statements and cards.
package cgd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const dateLayout = "02-01-2006"

var ErrUnknownFormat = errors.New("no matching CGD format found: expected columns for conta, extrato, or cartão")

// Parser turns a CGD export into ledger entries. Debits become expenses filed
// under the category given to Parse, credits become income from the source.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader, category, source string) ([]ledger.Entry, error) {
	utf8r, charset, err := enc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	l, cols, headerIdx := detectLayout(rows)
	if l == nil {
		return nil, ErrUnknownFormat
	}

	slog.Debug("parsing cgd export", "layout", l.name, "charset", charset, "rows", len(rows)-headerIdx-1)

	rp := rowParser{layout: l, cols: cols, category: category, source: source}

	return rp.parse(rows[headerIdx+1:], headerIdx+1)
}

type colIndex map[string]int

// detectLayout finds the first row that carries every column of a known
// layout and returns the layout, the column positions and the row index.
func detectLayout(rows [][]string) (*layout, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range layouts {
			if cols.hasAll(layouts[i].columns()) {
				return &layouts[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func (c colIndex) hasAll(names []string) bool {
	for _, name := range names {
		if _, ok := c[name]; !ok {
			return false
		}
	}

	return true
}

type rowParser struct {
	layout   *layout
	cols     colIndex
	category string
	source   string
}

// parse reads the data rows following the header. Rows without a date or a
// non-zero amount are page footers and totals, and are skipped.
func (rp rowParser) parse(rows [][]string, headerRowNum int) ([]ledger.Entry, error) {
	dateIdx := rp.cols[rp.layout.date]
	descIdx := rp.cols[rp.layout.desc]

	var entries []ledger.Entry

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		date, ok := parseDate(cellValue(row, dateIdx))
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		typ, amount, ok := rp.layout.movement(func(col string) string {
			return cellValue(row, rp.cols[col])
		})
		if !ok {
			continue
		}

		e, err := ledger.NewEntry(typ, desc, amount, label(typ, rp.category, rp.source), date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
