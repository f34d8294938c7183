// Package ledger tracks which work items the user has already dismissed.
package ledger

import (
	"sort"
	"sync"
)

// Ledger is the mutable set of acknowledged work-item ids. Membership is
// monotonic within a session: ids are only ever added, except for Reset
// which clears the whole set.
type Ledger struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func New() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

// Acknowledge adds the id to the set. Acknowledging an id that is already
// present is a no-op.
func (l *Ledger) Acknowledge(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids[id] = struct{}{}
}

// AcknowledgeAll adds every id in the collection, idempotently per id.
func (l *Ledger) AcknowledgeAll(ids []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
}

// Reset clears the set entirely, making previously acknowledged items
// eligible for urgency again on the next classification pass.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = make(map[string]struct{})
}

// Contains reports membership. Used by the classifier on every pass.
func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[id]
	return ok
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// Snapshot returns the acknowledged ids in sorted order so observable
// state serializes deterministically.
func (l *Ledger) Snapshot() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
