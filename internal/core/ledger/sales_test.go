package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

func TestSalesLedgerAddInvoices(t *testing.T) {
	sl := NewSalesLedger()

	ids := sl.AddInvoices([]domain.NewSalesInvoice{
		{
			Debtor: "initech",
			Lines: []domain.NewSalesInvoiceLine{
				{Nominal: "sales", Description: "consulting", Amount: 9000, TransactionDate: day(time.January, 8)},
			},
		},
	})
	assert.Equal(t, []uint64{0}, ids)

	rows := sl.ListTransactions()
	require.Len(t, rows, 1)
	// Invoice rows stored as debits.
	assert.Equal(t, int64(9000), rows[0].Amount)
	assert.Equal(t, EntryTypeSaleInvoice, rows[0].EntryType)
	assert.Equal(t, int64(9000), sl.Balance())
}

func TestSalesLedgerAddReceipts(t *testing.T) {
	sl := NewSalesLedger()

	sl.AddReceipts([]domain.NewSalesLedgerReceipt{
		{Date: day(time.February, 10), Amount: 9000, Debtor: "initech", BankCode: "bank_current"},
	})

	rows := sl.ListTransactions()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(-9000), rows[0].Amount)
	assert.Equal(t, "bank receipt bank_current", rows[0].Notes)
	assert.Equal(t, EntryTypeBankReceipt, rows[0].EntryType)
}

func TestSalesLedgerAddSettledTransactions(t *testing.T) {
	sl := NewSalesLedger()

	ids := sl.AddSettledTransactions([]domain.SettledSale{
		{Date: day(time.March, 5), Amount: 1500, Debtor: "initech", Nominal: "sales", Notes: "invoice 7"},
	}, "bank_current")
	assert.Len(t, ids, 2)

	rows := sl.ListTransactions()
	require.Len(t, rows, 2)
	receipt, invoice := rows[0], rows[1]

	assert.Equal(t, receipt.BatchID, invoice.BatchID)
	assert.Equal(t, EntryTypeBankReceipt, receipt.EntryType)
	assert.Equal(t, EntryTypeSaleInvoice, invoice.EntryType)
	assert.Equal(t, int64(-1500), receipt.Amount)
	assert.Equal(t, int64(1500), invoice.Amount)
	assert.True(t, receipt.Settled)
	assert.True(t, invoice.Settled)
	assert.Equal(t, int64(0), sl.Balance())
}

func TestSalesLedgerUnpostedInvoices(t *testing.T) {
	sl := NewSalesLedger()
	ids := sl.AddInvoices([]domain.NewSalesInvoice{
		{
			Debtor: "initech",
			Lines: []domain.NewSalesInvoiceLine{
				{Nominal: "sales", Description: "consulting", Amount: 9000, TransactionDate: day(time.January, 8)},
			},
		},
	})

	invoices := sl.UnpostedInvoices()
	require.Len(t, invoices, 1)
	line := invoices[0].Lines[0]

	// Row debit negated into the revenue credit for the journal.
	assert.Equal(t, int64(-9000), line.Amount)
	assert.Equal(t, "sales", line.Nominal)
	assert.Equal(t, ids[0], line.TransactionID)

	sl.MarkExtractedToGL(ids)
	assert.Empty(t, sl.UnpostedInvoices())
}
