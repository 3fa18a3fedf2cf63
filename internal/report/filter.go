package report

import (
	"slices"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Predicate selects entries.
type Predicate func(ledger.Entry) bool

// Match reports whether e satisfies every predicate.
func Match(e ledger.Entry, preds ...Predicate) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}

	return true
}

// Filter keeps the entries matching every predicate, in their original order.
func Filter(entries []ledger.Entry, preds ...Predicate) []ledger.Entry {
	out := make([]ledger.Entry, 0, len(entries))

	for _, e := range entries {
		if Match(e, preds...) {
			out = append(out, e)
		}
	}

	return out
}

// ByCategory matches expenses whose category equals category, ignoring case.
func ByCategory(category string) Predicate {
	category = strings.TrimSpace(category)

	return func(e ledger.Entry) bool {
		return e.Type() == ledger.TypeExpense && strings.EqualFold(e.Category(), category)
	}
}

func ByType(t ledger.Type) Predicate {
	return func(e ledger.Entry) bool { return e.Type() == t }
}

// ByDateRange matches entries dated from start through end, both included.
// A zero bound leaves that side open.
func ByDateRange(start, end time.Time) Predicate {
	if !start.IsZero() {
		start = ledger.DateOf(start)
	}

	if !end.IsZero() {
		end = ledger.DateOf(end)
	}

	return func(e ledger.Entry) bool {
		d := e.Date()
		return (start.IsZero() || !d.Before(start)) && (end.IsZero() || !d.After(end))
	}
}

func ByMonth(m Month) Predicate {
	return func(e ledger.Entry) bool { return m.Contains(e.Date()) }
}

func FilterByCategory(entries []ledger.Entry, category string) []ledger.Entry {
	return Filter(entries, ByCategory(category))
}

func FilterByType(entries []ledger.Entry, t ledger.Type) []ledger.Entry {
	return Filter(entries, ByType(t))
}

func FilterByDateRange(entries []ledger.Entry, start, end time.Time) []ledger.Entry {
	return Filter(entries, ByDateRange(start, end))
}

func FilterByMonth(entries []ledger.Entry, m Month) []ledger.Entry {
	return Filter(entries, ByMonth(m))
}

// NewestFirst orders two entries by date, latest first.
func NewestFirst(a, b ledger.Entry) int {
	return b.Date().Compare(a.Date())
}

// SortByDateDesc returns a copy of entries, newest first. Entries sharing a
// date keep their stored order.
func SortByDateDesc(entries []ledger.Entry) []ledger.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, NewestFirst)

	return out
}
