package ledger

import (
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// Entry types stamped onto sub-ledger rows.
const (
	EntryTypeBankPayment     = "bank_payment"
	EntryTypeBankReceipt     = "bank_receipt"
	EntryTypePurchaseInvoice = "purchase_invoice"
	EntryTypeSaleInvoice     = "sale_invoice"
)

// BankLedger is the append-only store of raw bank movements.
type BankLedger struct {
	log Log[domain.BankTransaction]
}

var _ ports.TransactionLister = (*BankLedger)(nil)

// NewBankLedger creates an empty bank ledger.
func NewBankLedger() *BankLedger {
	return &BankLedger{}
}

// AddTransactions appends one batch of raw bank movements and returns the
// assigned transaction IDs in input order.
func (b *BankLedger) AddTransactions(transactions []domain.RawBankTransaction) []uint64 {
	batchID := b.log.AllocateBatchID()
	rows := make([]domain.BankTransaction, len(transactions))
	for i, raw := range transactions {
		rows[i] = domain.BankTransaction{
			RawBankTransaction: raw,
			BatchID:            batchID,
			Posting:            domain.Unposted,
		}
	}
	return b.log.Append(rows, func(row *domain.BankTransaction, id uint64) {
		row.TransactionID = id
	})
}

// ListTransactions returns all rows in insertion order.
func (b *BankLedger) ListTransactions() []domain.BankTransaction {
	return b.log.Snapshot()
}

// ListLedgerTransactions implements ports.TransactionLister.
func (b *BankLedger) ListLedgerTransactions() []ports.LedgerTransaction {
	rows := b.log.Snapshot()
	out := make([]ports.LedgerTransaction, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}

// Balance returns the sum of all stored amounts.
func (b *BankLedger) Balance() int64 {
	var total int64
	for _, row := range b.log.Snapshot() {
		total += row.Amount
	}
	return total
}

// MarkExtractedToGL flips the posting state of the given rows. Marking a row
// twice is a no-op.
func (b *BankLedger) MarkExtractedToGL(ids []uint64) {
	marked := idSet(ids)
	b.log.Mutate(func(rows []domain.BankTransaction) {
		for i := range rows {
			if _, ok := marked[rows[i].TransactionID]; ok {
				rows[i].Posting = domain.PostedToGL
			}
		}
	})
}

func idSet(ids []uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
