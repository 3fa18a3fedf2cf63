package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const maxLineSize = 1 << 20

type decoder struct {
	password    string
	hasPassword bool

	budget decimal.Decimal
	goal   decimal.Decimal

	targetDate   time.Time
	targetMonths int

	entries []ledger.Entry
}

// Decode reads an account stored under id. The id names the account; the
// USERNAME line is informational only.
//
// Malformed target date or month lines are ignored and negative budget or
// goal values fall back to unset. Anything else that does not parse, or a
// missing PASSWORD line, fails with ErrCorrupt.
func Decode(r io.Reader, id string) (*ledger.Account, error) {
	d := &decoder{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	inBlock := false
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case line == blockStart:
			inBlock = true
		case line == blockEnd:
			inBlock = false
		case inBlock:
			if err := d.record(lineNo, line); err != nil {
				return nil, err
			}
		default:
			if err := d.field(lineNo, line); err != nil {
				return nil, err
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading account: %w", err)
	}

	return d.account(id)
}

func (d *decoder) field(lineNo int, line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}

	switch key {
	case keyPassword:
		d.password = unescape(value)
		d.hasPassword = true
	case keyBudget:
		v, err := parseSetting(lineNo, key, value)
		if err != nil {
			return err
		}

		d.budget = v
	case keySavingsGoal:
		v, err := parseSetting(lineNo, key, value)
		if err != nil {
			return err
		}

		d.goal = v
	case keyTargetDate:
		if t, err := time.Parse(time.DateOnly, strings.TrimSpace(value)); err == nil {
			d.targetDate = t
		}
	case keyTargetMonths:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			d.targetMonths = n
		}
	}

	return nil
}

// parseSetting reads a budget or goal. Negative values read as unset.
func parseSetting(lineNo int, key, value string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, corrupt(lineNo, "%s %q is not a number", key, value)
	}

	if v.IsNegative() {
		return decimal.Zero, nil
	}

	return v, nil
}

func (d *decoder) record(lineNo int, line string) error {
	fields := split(line)
	if len(fields) != recordFields {
		return corrupt(lineNo, "expected %d fields, got %d", recordFields, len(fields))
	}

	typ := ledger.Type(fields[0])
	if !typ.Valid() {
		return corrupt(lineNo, "unknown record type %q", fields[0])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return corrupt(lineNo, "amount %q is not a number", fields[2])
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(fields[4]))
	if err != nil {
		return corrupt(lineNo, "date %q is not YYYY-MM-DD", fields[4])
	}

	e, err := ledger.NewEntry(typ, unescape(fields[1]), amount, unescape(fields[3]), date)
	if err != nil {
		return corrupt(lineNo, "%v", err)
	}

	d.entries = append(d.entries, e)

	return nil
}

func (d *decoder) account(id string) (*ledger.Account, error) {
	if !d.hasPassword {
		return nil, fmt.Errorf("%w: missing %s line", ErrCorrupt, keyPassword)
	}

	acc, err := ledger.RestoreAccount(id, d.password, d.entries...)
	if err != nil {
		return nil, fmt.Errorf("restoring account: %w", err)
	}

	if err := acc.SetMonthlyBudget(d.budget); err != nil {
		return nil, fmt.Errorf("restoring budget: %w", err)
	}

	if err := acc.SetSavingsGoal(d.goal); err != nil {
		return nil, fmt.Errorf("restoring savings goal: %w", err)
	}

	switch {
	case !d.targetDate.IsZero():
		err = acc.SetTargetDate(d.targetDate)
	case d.targetMonths > 0:
		err = acc.SetTargetMonths(d.targetMonths)
	}

	if err != nil {
		return nil, fmt.Errorf("restoring savings target: %w", err)
	}

	return acc, nil
}
