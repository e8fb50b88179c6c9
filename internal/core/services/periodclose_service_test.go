package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
)

type fixture struct {
	bank      *ledger.BankLedger
	purchases *ledger.PurchaseLedger
	sales     *ledger.SalesLedger
	general   *ledger.GeneralLedger
	service   *PeriodCloseService
}

func newFixture() *fixture {
	bank := ledger.NewBankLedger()
	purchases := ledger.NewPurchaseLedger()
	sales := ledger.NewSalesLedger()
	general := ledger.NewGeneralLedger(
		ledger.NewGeneralLedgerTransactions(),
		ledger.NewChartOfAccounts(),
		ledger.NewMonthlyCalendar(2021),
	)
	service := NewPeriodCloseService(
		bank, purchases, sales, general,
		ledger.NewInterLedgerJournalCreator(),
		ledger.NewDispersalsLogger(),
	)
	return &fixture{bank: bank, purchases: purchases, sales: sales, general: general, service: service}
}

func date(month time.Month, day int) time.Time {
	return time.Date(2021, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodCloseServiceCloseFullCycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Invoice in, paid through the bank, plus a sale banked the same way.
	f.purchases.AddInvoices([]domain.NewPurchaseInvoice{
		{
			Creditor: "acme",
			Lines: []domain.NewPurchaseInvoiceLine{
				{Nominal: "materials", Amount: 5000, TransactionDate: date(time.January, 4)},
			},
		},
	})
	f.purchases.AddPayments([]domain.NewPurchaseLedgerPayment{
		{Date: date(time.February, 2), Amount: -5000, Creditor: "acme", BankCode: "bank_current"},
	})
	f.sales.AddInvoices([]domain.NewSalesInvoice{
		{
			Debtor: "initech",
			Lines: []domain.NewSalesInvoiceLine{
				{Nominal: "sales", Amount: 9000, TransactionDate: date(time.January, 8)},
			},
		},
	})
	f.sales.AddReceipts([]domain.NewSalesLedgerReceipt{
		{Date: date(time.February, 10), Amount: 9000, Debtor: "initech", BankCode: "bank_current"},
	})
	f.bank.AddTransactions([]domain.RawBankTransaction{
		{BankCode: "bank_current", MatchedType: domain.MatchedTypeCreditor, Amount: -5000, Date: date(time.February, 2)},
		{BankCode: "bank_current", MatchedType: domain.MatchedTypeDebtor, Amount: 9000, Date: date(time.February, 10)},
	})

	require.NoError(t, f.service.Close(ctx))

	balances := f.general.Transactions.Balances()
	assert.Equal(t, int64(0), f.general.Transactions.Balance())
	assert.Equal(t, f.purchases.Balance(), balances[ledger.NominalPurchaseControl])
	assert.Equal(t, f.sales.Balance(), balances[ledger.NominalSalesControl])
	assert.Equal(t, int64(0), balances[ledger.NominalPurchaseControl])
	assert.Equal(t, int64(0), balances[ledger.NominalSalesControl])
	assert.Equal(t, int64(4000), balances["bank_current"])
	assert.Equal(t, int64(5000), balances["materials"])
	assert.Equal(t, int64(-9000), balances["sales"])

	assert.Empty(t, f.purchases.UnpostedInvoices())
	assert.Empty(t, f.sales.UnpostedInvoices())
}

func TestPeriodCloseServiceDisperseAllIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.purchases.AddInvoices([]domain.NewPurchaseInvoice{
		{
			Creditor: "acme",
			Lines: []domain.NewPurchaseInvoiceLine{
				{Nominal: "materials", Amount: 5000, TransactionDate: date(time.January, 4)},
			},
		},
	})
	f.bank.AddTransactions([]domain.RawBankTransaction{
		{BankCode: "bank_current", MatchedType: domain.MatchedTypeCreditor, Amount: -5000, Date: date(time.February, 2)},
	})

	require.NoError(t, f.service.DisperseAll(ctx))
	posted := len(f.general.Transactions.ListTransactions())
	require.NoError(t, f.service.DisperseAll(ctx))

	assert.Equal(t, posted, len(f.general.Transactions.ListTransactions()))
}

func TestPeriodCloseServiceReconcileEmptyLedgers(t *testing.T) {
	f := newFixture()

	assert.NoError(t, f.service.Reconcile(context.Background()))
}

func TestPeriodCloseServiceReconcileDetectsMismatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// A journal straight onto the control account has no sub-ledger
	// counterpart, so the control check fails.
	_, err := f.general.AddJournal(domain.Journal{
		JnlType:         "gnl",
		TransactionDate: date(time.January, 1),
		Lines: []domain.JournalLine{
			{Nominal: ledger.NominalPurchaseControl, Amount: 100, TransactionDate: date(time.January, 1)},
			{Nominal: "suspense", Amount: -100, TransactionDate: date(time.January, 1)},
		},
	})
	require.NoError(t, err)

	err = f.service.Reconcile(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	var recErr *ReconciliationError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Mismatches, 1)
	assert.Equal(t, "purchase ledger control account", recErr.Mismatches[0].Check)
	assert.Equal(t, int64(0), recErr.Mismatches[0].Expected)
	assert.Equal(t, int64(100), recErr.Mismatches[0].Actual)
}

func TestPeriodCloseServiceSettledTransactions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.purchases.AddSettledTransactions([]domain.SettledPurchase{
		{Date: date(time.March, 1), Amount: -800, Creditor: "acme", Nominal: "materials", Notes: "invoice 42"},
	}, "bank_current")
	f.bank.AddTransactions([]domain.RawBankTransaction{
		{BankCode: "bank_current", MatchedType: domain.MatchedTypeCreditor, Amount: -800, Date: date(time.March, 1)},
	})

	require.NoError(t, f.service.Close(ctx))

	balances := f.general.Transactions.Balances()
	assert.Equal(t, int64(0), balances[ledger.NominalPurchaseControl])
	assert.Equal(t, int64(800), balances["materials"])
	assert.Equal(t, int64(-800), balances["bank_current"])
}
