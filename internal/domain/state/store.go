package state

import (
	"context"
	"sync"
)

// CommitHook observes every committed snapshot. The persistence gateway
// registers one to write the snapshot to durable storage.
type CommitHook func(ctx context.Context, snap State)

// Store owns the current snapshot. Mutations run one at a time to
// completion; no interleaving of two in-flight mutations is possible even
// when the HTTP layer and background timers call in from different
// goroutines. This preserves the single-writer-at-a-time contract.
type Store struct {
	mu       sync.Mutex
	current  State
	onCommit CommitHook
}

// NewStore creates a store owning the given initial snapshot.
func NewStore(initial State) *Store {
	return &Store{current: initial.Normalize()}
}

// OnCommit registers the hook invoked after every successful mutation.
// The hook runs under the store lock so snapshots reach it in commit order.
func (st *Store) OnCommit(h CommitHook) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.onCommit = h
}

// Snapshot returns the current snapshot. Callers must treat it as an
// immutable value.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current
}

// Apply runs one mutation as an atomic snapshot transition. If mutate
// returns an error the store is left untouched; otherwise the returned
// snapshot becomes current and the commit hook fires.
func (st *Store) Apply(ctx context.Context, mutate func(State) (State, error)) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	next, err := mutate(st.current)
	if err != nil {
		return st.current, err
	}

	st.current = next
	if st.onCommit != nil {
		st.onCommit(ctx, next)
	}
	return next, nil
}

// Replace swaps in an externally supplied snapshot (restore path). The
// snapshot is normalized first; the commit hook fires as for any mutation.
func (st *Store) Replace(ctx context.Context, snap State) State {
	next, _ := st.Apply(ctx, func(State) (State, error) {
		return snap.Normalize(), nil
	})
	return next
}
