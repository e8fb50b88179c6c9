package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

const sampleCashbook = `Date,Transaction type,Description,Amount,Transfer Type,Creditor,Debtor,PL,BS,Notes,Bank
2021-01-04,payment,office steel,-50.00,direct debit,acme,,materials,,invoice 42,nwa_ca
2021-02-02,payment,acme settlement,-12.50,transfer,acme,,,,on account,nwa_ca
2021-02-10,receipt,initech fees,90.00,transfer,,initech,sales,,invoice 7,nwa_ca
2021-02-11,receipt,initech on account,45.05,transfer,,initech,,,,nwa_ca
2021-03-01,payment,loan repayment,-100.00,transfer,,,,loan,,nwa_ca
`

func TestLoadCashbookCSV(t *testing.T) {
	rows, err := LoadCashbookCSV(strings.NewReader(sampleCashbook))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	first := rows[0]
	assert.Equal(t, int64(0), first.RawID)
	assert.Equal(t, time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, int64(-5000), first.Amount)
	assert.Equal(t, "acme", first.Creditor)
	assert.Equal(t, "materials", first.PL)
	assert.Equal(t, "nwa_ca", first.Bank)

	assert.Equal(t, int64(4), rows[4].RawID)
	assert.Equal(t, int64(4505), rows[3].Amount)
}

func TestLoadCashbookCSVMissingColumn(t *testing.T) {
	_, err := LoadCashbookCSV(strings.NewReader("Date,Amount\n2021-01-01,5.00\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoadCashbookCSVBadAmount(t *testing.T) {
	csv := "Date,Transaction type,Description,Amount,Transfer Type,Creditor,Debtor,PL,BS,Notes,Bank\n" +
		"2021-01-01,payment,x,not-a-number,transfer,,,,,,nwa_ca\n"
	_, err := LoadCashbookCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoadCashbookCSVSubMinorAmount(t *testing.T) {
	csv := "Date,Transaction type,Description,Amount,Transfer Type,Creditor,Debtor,PL,BS,Notes,Bank\n" +
		"2021-01-01,payment,x,1.005,transfer,,,,,,nwa_ca\n"
	_, err := LoadCashbookCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoadCashbookCSVBadDate(t *testing.T) {
	csv := "Date,Transaction type,Description,Amount,Transfer Type,Creditor,Debtor,PL,BS,Notes,Bank\n" +
		"04/01/2021,payment,x,5.00,transfer,,,,,,nwa_ca\n"
	_, err := LoadCashbookCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func loadSample(t *testing.T) *SourceDataParser {
	t.Helper()
	rows, err := LoadCashbookCSV(strings.NewReader(sampleCashbook))
	require.NoError(t, err)
	parser := &SourceDataParser{}
	parser.RegisterSourceData(rows)
	return parser
}

func TestParserBankTransactions(t *testing.T) {
	parser := loadSample(t)

	txns := parser.BankTransactions("nwa_ca")
	require.Len(t, txns, 5)

	assert.Equal(t, "nwa_ca", txns[0].BankCode)
	assert.Equal(t, "acme", txns[0].MatchedAccount)
	assert.Equal(t, domain.MatchedTypeCreditor, txns[0].MatchedType)
	assert.Equal(t, domain.MatchedTypeDebtor, txns[2].MatchedType)
	assert.Equal(t, domain.MatchedTypeBalanceSheet, txns[4].MatchedType)
	assert.Equal(t, "loan", txns[4].MatchedAccount)
}

func TestParserSettledPurchaseInvoices(t *testing.T) {
	parser := loadSample(t)

	settled := parser.SettledPurchaseInvoices()
	require.Len(t, settled, 1)
	assert.Equal(t, "acme", settled[0].Creditor)
	assert.Equal(t, "materials", settled[0].Nominal)
	assert.Equal(t, int64(-5000), settled[0].Amount)
	assert.Equal(t, "invoice 42", settled[0].Notes)
}

func TestParserUnmatchedCreditorPayments(t *testing.T) {
	parser := loadSample(t)

	payments := parser.UnmatchedCreditorPayments()
	require.Len(t, payments, 1)
	assert.Equal(t, "acme", payments[0].Creditor)
	assert.Equal(t, int64(-1250), payments[0].Amount)
	assert.Equal(t, "nwa_ca", payments[0].BankCode)
}

func TestParserSettledSalesInvoices(t *testing.T) {
	parser := loadSample(t)

	settled := parser.SettledSalesInvoices()
	require.Len(t, settled, 1)
	assert.Equal(t, "initech", settled[0].Debtor)
	assert.Equal(t, "sales", settled[0].Nominal)
	assert.Equal(t, int64(9000), settled[0].Amount)
}

func TestParserUnmatchedDebtorReceipts(t *testing.T) {
	parser := loadSample(t)

	receipts := parser.UnmatchedDebtorReceipts()
	require.Len(t, receipts, 1)
	assert.Equal(t, "initech", receipts[0].Debtor)
	assert.Equal(t, int64(4505), receipts[0].Amount)
}
