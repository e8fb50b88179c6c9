package ledger

import "sync"

// Log is a generic append-only row store. It owns the ID assignment for a
// single ledger: transaction IDs are allocated from an explicit counter
// (never derived from existing rows), so they are unique and strictly
// increasing for the lifetime of the store and are never reused.
//
// Rows are never updated or deleted after insertion; the one exception is
// the posting-state transition performed by the owning ledger through
// Mutate. All operations take the store lock, so appends are atomic and
// readers always observe whole batches.
type Log[R any] struct {
	mu                sync.RWMutex
	rows              []R
	nextTransactionID uint64
	nextBatchID       uint32
}

// NextTransactionID returns the transaction ID the next appended row will
// receive. On an empty store this is 0.
func (l *Log[R]) NextTransactionID() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nextTransactionID
}

// AllocateBatchID hands out the next batch ID. Each call returns a new,
// strictly increasing value; rows appended by one logical operation share
// the ID from a single allocation.
func (l *Log[R]) AllocateBatchID() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextBatchID
	l.nextBatchID++
	return id
}

// Append assigns a contiguous range of transaction IDs to the given rows via
// stamp, persists them in order and returns the assigned IDs. It never
// fails: an empty store simply starts the range at 0.
func (l *Log[R]) Append(rows []R, stamp func(row *R, transactionID uint64)) []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]uint64, len(rows))
	for i := range rows {
		id := l.nextTransactionID
		l.nextTransactionID++
		stamp(&rows[i], id)
		ids[i] = id
	}
	l.rows = append(l.rows, rows...)
	return ids
}

// Snapshot returns a copy of all rows in insertion order.
func (l *Log[R]) Snapshot() []R {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]R, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len returns the number of stored rows.
func (l *Log[R]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}

// Mutate runs fn with write access to the stored rows. It exists solely for
// the owning ledger's posting-state transitions; amounts and IDs must never
// be changed.
func (l *Log[R]) Mutate(fn func(rows []R)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.rows)
}
