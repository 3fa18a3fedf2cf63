package ledger

import "time"

// DateOf drops the time of day from t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validDate reports whether t is set and its year fits the four-digit
// YYYY-MM-DD form accounts are stored in.
func validDate(t time.Time) bool {
	if t.IsZero() {
		return false
	}

	y := DateOf(t).Year()

	return y >= 1 && y <= 9999
}

// FirstOfMonth returns the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween counts the whole calendar months from start to end.
// A month only counts once the day of month has been reached, so
// 2024-01-31 to 2024-02-29 is zero months. Negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())

	switch {
	case months > 0 && end.Day() < start.Day():
		months--
	case months < 0 && end.Day() > start.Day():
		months++
	}

	return months
}
