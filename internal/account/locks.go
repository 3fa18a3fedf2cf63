package account

import "sync"

// accountLocks hands out one mutex per account id so that a load, change and
// save of the same account never interleave with another.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until id is free and returns the matching unlock.
func (l *accountLocks) lock(id string) func() {
	l.mu.Lock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}

	l.mu.Unlock()

	m.Lock()

	return m.Unlock
}
