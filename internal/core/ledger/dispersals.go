package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// DispersalsLogger tracks which sub-ledger transactions have already been
// dispersed into the General Ledger, so each transaction is dispersed at
// most once.
type DispersalsLogger struct {
	mu        sync.RWMutex
	ledgers   map[string]ports.TransactionLister
	dispersed map[string]map[uint64]struct{}
}

// NewDispersalsLogger creates a logger with no registered ledgers.
func NewDispersalsLogger() *DispersalsLogger {
	return &DispersalsLogger{
		ledgers:   make(map[string]ports.TransactionLister),
		dispersed: make(map[string]map[uint64]struct{}),
	}
}

// RegisterLedger registers a ledger under the given name. Re-registering a
// name resets its dispersed set.
func (d *DispersalsLogger) RegisterLedger(name string, lister ports.TransactionLister) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ledgers[name] = lister
	d.dispersed[name] = make(map[uint64]struct{})
}

// LedgerNames returns the registered ledger names in sorted order.
func (d *DispersalsLogger) LedgerNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.ledgers))
	for name := range d.ledgers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UndispersedTransactions returns the registered ledger's transactions that
// have not yet been logged as dispersed, in the ledger's native order.
func (d *DispersalsLogger) UndispersedTransactions(name string) ([]ports.LedgerTransaction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	lister, ok := d.ledgers[name]
	if !ok {
		return nil, fmt.Errorf("%w: ledger %q not registered", apperrors.ErrNotFound, name)
	}
	seen := d.dispersed[name]
	var out []ports.LedgerTransaction
	for _, txn := range lister.ListLedgerTransactions() {
		if _, done := seen[txn.TransactionRef()]; done {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

// LogDispersal records the given transactions as dispersed for the named
// ledger. Logging a transaction twice is a no-op.
func (d *DispersalsLogger) LogDispersal(name string, transactions []ports.LedgerTransaction) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	seen, ok := d.dispersed[name]
	if !ok {
		return fmt.Errorf("%w: ledger %q not registered", apperrors.ErrNotFound, name)
	}
	for _, txn := range transactions {
		seen[txn.TransactionRef()] = struct{}{}
	}
	return nil
}
