package ports

import (
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// LedgerTransaction is the minimal view of a persisted ledger row needed to
// track dispersals. Every ledger row type satisfies it.
type LedgerTransaction interface {
	TransactionRef() uint64
}

// TransactionLister exposes a ledger's rows, in insertion order, to the
// dispersals logger. Implementations must return a consistent snapshot.
type TransactionLister interface {
	ListLedgerTransactions() []LedgerTransaction
}

// PeriodCalendar maps dates to accounting periods. The default
// implementation is a fixed table of one calendar year of months; injecting
// the interface keeps the "no next period" case an explicit error rather
// than an unguarded lookup.
type PeriodCalendar interface {
	// PeriodFor returns the period containing the given date.
	PeriodFor(date time.Time) (domain.Period, error)
	// PeriodStart returns the first day of the given period number.
	PeriodStart(period int) (time.Time, error)
	// NextPeriodStart returns the first day of the period following the one
	// containing the given date.
	NextPeriodStart(date time.Time) (time.Time, error)
}
