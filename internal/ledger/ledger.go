package ledger

// Ledger is the ordered list of entries belonging to one account.
// Stored order is insertion order; nothing in this package reorders it.
type Ledger struct {
	entries []Entry
}

// New returns a ledger holding entries in the given order.
func New(entries ...Entry) *Ledger {
	return &Ledger{entries: append([]Entry(nil), entries...)}
}

// Add appends e.
func (l *Ledger) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Remove deletes the first entry equal to e and reports whether one was found.
func (l *Ledger) Remove(e Entry) bool {
	for i, existing := range l.entries {
		if existing.Equal(e) {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}

	return false
}

// RemoveAt deletes the entry at stored position i.
func (l *Ledger) RemoveAt(i int) error {
	if i < 0 || i >= len(l.entries) {
		return ErrIndexOutOfRange
	}

	l.entries = append(l.entries[:i], l.entries[i+1:]...)

	return nil
}

// At returns the entry at stored position i.
func (l *Ledger) At(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, ErrIndexOutOfRange
	}

	return l.entries[i], nil
}

// Entries returns a copy of the entries in stored order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
