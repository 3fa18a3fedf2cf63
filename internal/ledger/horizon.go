package ledger

import (
	"strconv"
	"time"
)

// HorizonKind says how the deadline of a savings goal is expressed.
type HorizonKind int

const (
	HorizonNone HorizonKind = iota
	HorizonDate
	HorizonMonths
)

func (k HorizonKind) String() string {
	switch k {
	case HorizonDate:
		return "date"
	case HorizonMonths:
		return "months"
	}

	return "none"
}

// Horizon is the deadline of a savings goal: an absolute target date, a
// number of months, or nothing. Only one of the two can be set at a time.
type Horizon struct {
	kind   HorizonKind
	date   time.Time
	months int
}

// NoHorizon returns the empty horizon.
func NoHorizon() Horizon {
	return Horizon{}
}

// ByDate returns a horizon ending on the given calendar date.
func ByDate(date time.Time) (Horizon, error) {
	if !validDate(date) {
		return Horizon{}, ErrInvalidDate
	}

	return Horizon{kind: HorizonDate, date: DateOf(date)}, nil
}

// ByMonths returns a horizon of n months from now.
func ByMonths(n int) (Horizon, error) {
	if n <= 0 {
		return Horizon{}, ErrInvalidMonths
	}

	return Horizon{kind: HorizonMonths, months: n}, nil
}

func (h Horizon) Kind() HorizonKind { return h.kind }

// Date returns the target date and whether the horizon is date based.
func (h Horizon) Date() (time.Time, bool) {
	return h.date, h.kind == HorizonDate
}

// Months returns the month count and whether the horizon is month based.
func (h Horizon) Months() (int, bool) {
	return h.months, h.kind == HorizonMonths
}

func (h Horizon) IsZero() bool {
	return h.kind == HorizonNone
}

func (h Horizon) String() string {
	switch h.kind {
	case HorizonDate:
		return "by " + h.date.Format(time.DateOnly)
	case HorizonMonths:
		return "in " + strconv.Itoa(h.months) + " months"
	}

	return "no deadline"
}
