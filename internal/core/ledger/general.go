package ledger

import (
	"strings"
	"sync"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// ReversalSuffix marks a journal type whose posting must be followed by an
// opposite journal in the next period.
const ReversalSuffix = "_rev"

// GeneralLedgerTransactions is the canonical append-only journal-line store.
// It enforces the zero-sum invariant, derives accounting periods and assigns
// one journal ID per posted journal.
type GeneralLedgerTransactions struct {
	log Log[domain.GeneralLedgerTransaction]

	mu        sync.Mutex
	nextJnlID uint64
}

// NewGeneralLedgerTransactions creates an empty store.
func NewGeneralLedgerTransactions() *GeneralLedgerTransactions {
	return &GeneralLedgerTransactions{}
}

// AddJournal validates and persists a journal. If the lines do not sum to
// zero it returns a JournalBalanceError and no row is written. On success
// all lines share one newly assigned journal ID and the assigned transaction
// IDs are returned in line order.
func (l *GeneralLedgerTransactions) AddJournal(journal domain.Journal) ([]uint64, error) {
	if total := journal.Total(); total != 0 {
		return nil, &JournalBalanceError{JnlType: journal.JnlType, Total: total}
	}

	l.mu.Lock()
	jnlID := l.nextJnlID
	l.nextJnlID++
	l.mu.Unlock()

	rows := make([]domain.GeneralLedgerTransaction, len(journal.Lines))
	for i, line := range journal.Lines {
		rows[i] = domain.GeneralLedgerTransaction{
			JnlID:           jnlID,
			Nominal:         line.Nominal,
			JnlType:         journal.JnlType,
			Amount:          line.Amount,
			Description:     line.Description,
			TransactionDate: line.TransactionDate,
			Period:          PeriodOf(line.TransactionDate),
		}
	}
	ids := l.log.Append(rows, func(row *domain.GeneralLedgerTransaction, id uint64) {
		row.TransactionID = id
	})
	return ids, nil
}

// ListTransactions returns all persisted journal lines in insertion order.
func (l *GeneralLedgerTransactions) ListTransactions() []domain.GeneralLedgerTransaction {
	return l.log.Snapshot()
}

// ListLedgerTransactions implements ports.TransactionLister.
func (l *GeneralLedgerTransactions) ListLedgerTransactions() []ports.LedgerTransaction {
	rows := l.log.Snapshot()
	out := make([]ports.LedgerTransaction, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}

// Balance returns the sum of all amounts. A ledger that has only ever
// accepted balanced journals totals zero.
func (l *GeneralLedgerTransactions) Balance() int64 {
	var total int64
	for _, row := range l.log.Snapshot() {
		total += row.Amount
	}
	return total
}

// Balances returns the sum of amounts per nominal account.
func (l *GeneralLedgerTransactions) Balances() map[string]int64 {
	balances := make(map[string]int64)
	for _, row := range l.log.Snapshot() {
		balances[row.Nominal] += row.Amount
	}
	return balances
}

// GeneralLedger orchestrates journal posting against the transaction store,
// the chart of accounts and the period calendar.
type GeneralLedger struct {
	Transactions *GeneralLedgerTransactions
	Chart        *ChartOfAccounts
	calendar     ports.PeriodCalendar
}

// NewGeneralLedger wires the transaction store, chart and calendar together.
func NewGeneralLedger(transactions *GeneralLedgerTransactions, chart *ChartOfAccounts, calendar ports.PeriodCalendar) *GeneralLedger {
	return &GeneralLedger{
		Transactions: transactions,
		Chart:        chart,
		calendar:     calendar,
	}
}

// AddJournal posts a journal. Journal types carrying the reversal suffix
// additionally post the opposite journal dated at the start of the following
// period. The next period is resolved before anything is written, so a
// reversal in the final period fails with ErrNoNextPeriod and leaves the
// ledger unchanged.
func (g *GeneralLedger) AddJournal(journal domain.Journal) ([]uint64, error) {
	var reversal *domain.Journal
	if strings.HasSuffix(journal.JnlType, ReversalSuffix) {
		next, err := g.calendar.NextPeriodStart(journal.TransactionDate)
		if err != nil {
			return nil, err
		}
		opposite := CreateOppositeJournal(journal)
		opposite.TransactionDate = next
		for i := range opposite.Lines {
			opposite.Lines[i].TransactionDate = next
		}
		reversal = &opposite
	}

	ids, err := g.Transactions.AddJournal(journal)
	if err != nil {
		return nil, err
	}
	if reversal != nil {
		reversalIDs, err := g.Transactions.AddJournal(*reversal)
		if err != nil {
			return nil, err
		}
		ids = append(ids, reversalIDs...)
	}
	return ids, nil
}

// CreateOppositeJournal returns a journal with every line amount negated and
// all other fields unchanged.
func CreateOppositeJournal(journal domain.Journal) domain.Journal {
	opposite := domain.Journal{
		JnlType:         journal.JnlType,
		TransactionDate: journal.TransactionDate,
		Lines:           make([]domain.JournalLine, len(journal.Lines)),
	}
	for i, line := range journal.Lines {
		opposite.Lines[i] = domain.JournalLine{
			Nominal:         line.Nominal,
			Description:     line.Description,
			Amount:          -line.Amount,
			TransactionDate: line.TransactionDate,
		}
	}
	return opposite
}
