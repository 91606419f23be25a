package wallet

import (
	"fmt"
	"sync"
)

// keyedLocks serializes wallet mutations per (user, currency) pair. The
// balance check, ledger write, and reconcile run under one key lock, which
// closes the check-then-write race between concurrent withdrawals and
// approvals on the same wallet.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the pair and returns its unlock function.
func (l *keyedLocks) Lock(userID, currencyID uint) func() {
	key := fmt.Sprintf("%d:%d", userID, currencyID)

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
