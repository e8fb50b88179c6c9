package ledger

import (
	"fmt"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// SalesLedger is the append-only store of debtor invoices and receipts.
// Invoice rows are stored as debits (positive amounts), settlements as the
// negation of the cashbook movement; an open debtor therefore carries a
// positive balance that agrees with the sales control account.
type SalesLedger struct {
	log Log[domain.SalesLedgerRow]
}

var _ ports.TransactionLister = (*SalesLedger)(nil)

// NewSalesLedger creates an empty sales ledger.
func NewSalesLedger() *SalesLedger {
	return &SalesLedger{}
}

// AddInvoices appends the given invoices, one batch per invoice, and returns
// all assigned transaction IDs in input order.
func (s *SalesLedger) AddInvoices(invoices []domain.NewSalesInvoice) []uint64 {
	var ids []uint64
	for _, invoice := range invoices {
		batchID := s.log.AllocateBatchID()
		rows := make([]domain.SalesLedgerRow, len(invoice.Lines))
		for i, line := range invoice.Lines {
			rows[i] = domain.SalesLedgerRow{
				RawID:     line.RawID,
				BatchID:   batchID,
				EntryType: EntryTypeSaleInvoice,
				Debtor:    invoice.Debtor,
				Date:      line.TransactionDate,
				Amount:    line.Amount,
				Notes:     line.Description,
				Nominal:   line.Nominal,
				Posting:   domain.Unposted,
			}
		}
		ids = append(ids, s.log.Append(rows, stampSalesRow)...)
	}
	return ids
}

// AddReceipts appends one batch of debtor receipts taken from the cashbook
// and returns the assigned transaction IDs.
func (s *SalesLedger) AddReceipts(receipts []domain.NewSalesLedgerReceipt) []uint64 {
	batchID := s.log.AllocateBatchID()
	rows := make([]domain.SalesLedgerRow, len(receipts))
	for i, receipt := range receipts {
		rows[i] = domain.SalesLedgerRow{
			RawID:     receipt.RawID,
			BatchID:   batchID,
			EntryType: EntryTypeBankReceipt,
			Debtor:    receipt.Debtor,
			Date:      receipt.Date,
			Amount:    -receipt.Amount,
			Notes:     fmt.Sprintf("bank receipt %s", receipt.BankCode),
			Posting:   domain.Unposted,
		}
	}
	return s.log.Append(rows, stampSalesRow)
}

// AddSettledTransactions appends, per settled sale, a receipt row and the
// invoice row it settles. Both rows share one batch and are flagged settled
// on arrival.
func (s *SalesLedger) AddSettledTransactions(settled []domain.SettledSale, bankCode string) []uint64 {
	var ids []uint64
	for _, item := range settled {
		batchID := s.log.AllocateBatchID()
		rows := []domain.SalesLedgerRow{
			{
				RawID:     item.RawID,
				BatchID:   batchID,
				EntryType: EntryTypeBankReceipt,
				Debtor:    item.Debtor,
				Date:      item.Date,
				Amount:    -item.Amount,
				Notes:     fmt.Sprintf("bank receipt %s", bankCode),
				Settled:   true,
				Posting:   domain.Unposted,
			},
			{
				RawID:     item.RawID,
				BatchID:   batchID,
				EntryType: EntryTypeSaleInvoice,
				Debtor:    item.Debtor,
				Date:      item.Date,
				Amount:    item.Amount,
				Notes:     item.Notes,
				Nominal:   item.Nominal,
				Settled:   true,
				Posting:   domain.Unposted,
			},
		}
		ids = append(ids, s.log.Append(rows, stampSalesRow)...)
	}
	return ids
}

// UnpostedInvoices reconstructs one invoice per unposted invoice row, with
// the row amount negated into a revenue credit. Each invoice currently
// carries exactly one line.
func (s *SalesLedger) UnpostedInvoices() []domain.Invoice {
	var invoices []domain.Invoice
	for _, row := range s.log.Snapshot() {
		if row.Posting != domain.Unposted || row.EntryType != EntryTypeSaleInvoice {
			continue
		}
		invoices = append(invoices, domain.Invoice{
			Counterparty: row.Debtor,
			Lines: []domain.InvoiceLine{{
				TransactionID:   row.TransactionID,
				Nominal:         row.Nominal,
				Description:     row.Notes,
				Amount:          -row.Amount,
				TransactionDate: row.Date,
			}},
		})
	}
	return invoices
}

// MarkExtractedToGL flips the posting state of the given rows. Marking a row
// twice is a no-op.
func (s *SalesLedger) MarkExtractedToGL(ids []uint64) {
	marked := idSet(ids)
	s.log.Mutate(func(rows []domain.SalesLedgerRow) {
		for i := range rows {
			if _, ok := marked[rows[i].TransactionID]; ok {
				rows[i].Posting = domain.PostedToGL
			}
		}
	})
}

// ListTransactions returns all rows in insertion order.
func (s *SalesLedger) ListTransactions() []domain.SalesLedgerRow {
	return s.log.Snapshot()
}

// ListLedgerTransactions implements ports.TransactionLister.
func (s *SalesLedger) ListLedgerTransactions() []ports.LedgerTransaction {
	rows := s.log.Snapshot()
	out := make([]ports.LedgerTransaction, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}

// Balance returns the sum of all stored amounts.
func (s *SalesLedger) Balance() int64 {
	var total int64
	for _, row := range s.log.Snapshot() {
		total += row.Amount
	}
	return total
}

func stampSalesRow(row *domain.SalesLedgerRow, id uint64) {
	row.TransactionID = id
}
