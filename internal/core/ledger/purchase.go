package ledger

import (
	"fmt"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ports"
)

// PurchaseLedger is the append-only store of creditor invoices and payments.
// Invoice rows are stored as credits (negative amounts), settlements as the
// negation of the cashbook movement; an open creditor therefore carries a
// negative balance that agrees with the purchase control account.
type PurchaseLedger struct {
	log Log[domain.PurchaseLedgerRow]
}

var _ ports.TransactionLister = (*PurchaseLedger)(nil)

// NewPurchaseLedger creates an empty purchase ledger.
func NewPurchaseLedger() *PurchaseLedger {
	return &PurchaseLedger{}
}

// AddInvoices appends the given invoices, one batch per invoice, and returns
// all assigned transaction IDs in input order.
func (p *PurchaseLedger) AddInvoices(invoices []domain.NewPurchaseInvoice) []uint64 {
	var ids []uint64
	for _, invoice := range invoices {
		batchID := p.log.AllocateBatchID()
		rows := make([]domain.PurchaseLedgerRow, len(invoice.Lines))
		for i, line := range invoice.Lines {
			rows[i] = domain.PurchaseLedgerRow{
				RawID:     line.RawID,
				BatchID:   batchID,
				EntryType: EntryTypePurchaseInvoice,
				Creditor:  invoice.Creditor,
				Date:      line.TransactionDate,
				Amount:    -line.Amount,
				Notes:     line.Description,
				Nominal:   line.Nominal,
				Posting:   domain.Unposted,
			}
		}
		ids = append(ids, p.log.Append(rows, stampPurchaseRow)...)
	}
	return ids
}

// AddPayments appends one batch of creditor payments taken from the
// cashbook and returns the assigned transaction IDs.
func (p *PurchaseLedger) AddPayments(payments []domain.NewPurchaseLedgerPayment) []uint64 {
	batchID := p.log.AllocateBatchID()
	rows := make([]domain.PurchaseLedgerRow, len(payments))
	for i, payment := range payments {
		rows[i] = domain.PurchaseLedgerRow{
			RawID:     payment.RawID,
			BatchID:   batchID,
			EntryType: EntryTypeBankPayment,
			Creditor:  payment.Creditor,
			Date:      payment.Date,
			Amount:    -payment.Amount,
			Notes:     fmt.Sprintf("bank payment %s", payment.BankCode),
			Posting:   domain.Unposted,
		}
	}
	return p.log.Append(rows, stampPurchaseRow)
}

// AddSettledTransactions appends, per settled purchase, a payment row and
// the invoice row it settles. Both rows share one batch and are flagged
// settled on arrival.
func (p *PurchaseLedger) AddSettledTransactions(settled []domain.SettledPurchase, bankCode string) []uint64 {
	var ids []uint64
	for _, item := range settled {
		batchID := p.log.AllocateBatchID()
		rows := []domain.PurchaseLedgerRow{
			{
				RawID:     item.RawID,
				BatchID:   batchID,
				EntryType: EntryTypeBankPayment,
				Creditor:  item.Creditor,
				Date:      item.Date,
				Amount:    -item.Amount,
				Notes:     fmt.Sprintf("bank payment %s", bankCode),
				Settled:   true,
				Posting:   domain.Unposted,
			},
			{
				RawID:     item.RawID,
				BatchID:   batchID,
				EntryType: EntryTypePurchaseInvoice,
				Creditor:  item.Creditor,
				Date:      item.Date,
				Amount:    item.Amount,
				Notes:     item.Notes,
				Nominal:   item.Nominal,
				Settled:   true,
				Posting:   domain.Unposted,
			},
		}
		ids = append(ids, p.log.Append(rows, stampPurchaseRow)...)
	}
	return ids
}

// UnpostedInvoices reconstructs one invoice per unposted invoice row, with
// the row amount negated back into a cost. Each invoice currently carries
// exactly one line.
func (p *PurchaseLedger) UnpostedInvoices() []domain.Invoice {
	var invoices []domain.Invoice
	for _, row := range p.log.Snapshot() {
		if row.Posting != domain.Unposted || row.EntryType != EntryTypePurchaseInvoice {
			continue
		}
		invoices = append(invoices, domain.Invoice{
			Counterparty: row.Creditor,
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
func (p *PurchaseLedger) MarkExtractedToGL(ids []uint64) {
	marked := idSet(ids)
	p.log.Mutate(func(rows []domain.PurchaseLedgerRow) {
		for i := range rows {
			if _, ok := marked[rows[i].TransactionID]; ok {
				rows[i].Posting = domain.PostedToGL
			}
		}
	})
}

// ListTransactions returns all rows in insertion order.
func (p *PurchaseLedger) ListTransactions() []domain.PurchaseLedgerRow {
	return p.log.Snapshot()
}

// ListLedgerTransactions implements ports.TransactionLister.
func (p *PurchaseLedger) ListLedgerTransactions() []ports.LedgerTransaction {
	rows := p.log.Snapshot()
	out := make([]ports.LedgerTransaction, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out
}

// Balance returns the sum of all stored amounts.
func (p *PurchaseLedger) Balance() int64 {
	var total int64
	for _, row := range p.log.Snapshot() {
		total += row.Amount
	}
	return total
}

func stampPurchaseRow(row *domain.PurchaseLedgerRow, id uint64) {
	row.TransactionID = id
}
