package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2021, month, d, 0, 0, 0, 0, time.UTC)
}

func balancedJournal(jnlType string, date time.Time, amount int64) domain.Journal {
	return domain.Journal{
		JnlType:         jnlType,
		TransactionDate: date,
		Lines: []domain.JournalLine{
			{Nominal: "abc", Description: "one", Amount: amount, TransactionDate: date},
			{Nominal: "def", Description: "two", Amount: -amount, TransactionDate: date},
		},
	}
}

func newTestGeneralLedger() *GeneralLedger {
	return NewGeneralLedger(NewGeneralLedgerTransactions(), NewChartOfAccounts(), NewMonthlyCalendar(2021))
}

func TestAddJournalPersistsLines(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	ids, err := store.AddJournal(balancedJournal("gnl", day(time.January, 1), 123))
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1}, ids)

	rows := store.ListTransactions()
	require.Len(t, rows, 2)
	assert.Equal(t, "abc", rows[0].Nominal)
	assert.Equal(t, int64(123), rows[0].Amount)
	assert.Equal(t, int64(-123), rows[1].Amount)
	assert.Equal(t, "gnl", rows[0].JnlType)
	assert.Equal(t, 1, rows[0].Period)
	assert.Equal(t, int64(0), store.Balance())
}

func TestAddJournalMultiLine(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	journal := domain.Journal{
		JnlType:         "gnl",
		TransactionDate: day(time.April, 9),
		Lines: []domain.JournalLine{
			{Nominal: "abc", Amount: 123, TransactionDate: day(time.April, 9)},
			{Nominal: "def", Amount: 500, TransactionDate: day(time.April, 9)},
			{Nominal: "ghi", Amount: -623, TransactionDate: day(time.April, 9)},
		},
	}
	ids, err := store.AddJournal(journal)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.Equal(t, int64(0), store.Balance())
}

func TestAddJournalRejectsUnbalanced(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	journal := domain.Journal{
		JnlType:         "gnl",
		TransactionDate: day(time.January, 1),
		Lines: []domain.JournalLine{
			{Nominal: "abc", Amount: 123, TransactionDate: day(time.January, 1)},
			{Nominal: "def", Amount: -100, TransactionDate: day(time.January, 1)},
		},
	}
	_, err := store.AddJournal(journal)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJournalUnbalanced)

	var balanceErr *JournalBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, int64(23), balanceErr.Total)
	assert.Empty(t, store.ListTransactions())
}

func TestAddJournalSharesJournalID(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	_, err := store.AddJournal(balancedJournal("gnl", day(time.January, 1), 10))
	require.NoError(t, err)
	_, err = store.AddJournal(balancedJournal("gnl", day(time.February, 1), 20))
	require.NoError(t, err)

	rows := store.ListTransactions()
	require.Len(t, rows, 4)
	assert.Equal(t, uint64(0), rows[0].JnlID)
	assert.Equal(t, uint64(0), rows[1].JnlID)
	assert.Equal(t, uint64(1), rows[2].JnlID)
	assert.Equal(t, uint64(1), rows[3].JnlID)
}

func TestAddJournalZeroDateGetsUnknownPeriod(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	journal := domain.Journal{
		JnlType: "gnl",
		Lines: []domain.JournalLine{
			{Nominal: "abc", Amount: 5},
			{Nominal: "def", Amount: -5},
		},
	}
	_, err := store.AddJournal(journal)
	require.NoError(t, err)

	for _, row := range store.ListTransactions() {
		assert.Equal(t, domain.PeriodUnknown, row.Period)
	}
}

func TestGeneralLedgerAddJournalReversal(t *testing.T) {
	gl := newTestGeneralLedger()

	ids, err := gl.AddJournal(balancedJournal("gnl_rev", day(time.January, 15), 123))
	require.NoError(t, err)
	assert.Len(t, ids, 4)

	rows := gl.Transactions.ListTransactions()
	require.Len(t, rows, 4)

	// Original lines keep their date and period.
	assert.Equal(t, int64(123), rows[0].Amount)
	assert.Equal(t, 1, rows[0].Period)

	// Reversal lines are negated and dated at the next period start.
	assert.Equal(t, int64(-123), rows[2].Amount)
	assert.Equal(t, int64(123), rows[3].Amount)
	assert.Equal(t, day(time.February, 1), rows[2].TransactionDate)
	assert.Equal(t, 2, rows[2].Period)

	assert.Equal(t, int64(0), gl.Transactions.Balance())
	for _, balance := range gl.Transactions.Balances() {
		assert.Equal(t, int64(0), balance)
	}
}

func TestGeneralLedgerReversalInFinalPeriodWritesNothing(t *testing.T) {
	gl := newTestGeneralLedger()

	_, err := gl.AddJournal(balancedJournal("gnl_rev", day(time.December, 10), 50))
	assert.ErrorIs(t, err, ErrNoNextPeriod)
	assert.Empty(t, gl.Transactions.ListTransactions())
}

func TestGeneralLedgerPlainJournalNotReversed(t *testing.T) {
	gl := newTestGeneralLedger()

	ids, err := gl.AddJournal(balancedJournal("gnl", day(time.December, 10), 50))
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Len(t, gl.Transactions.ListTransactions(), 2)
}

func TestBalancesPerNominal(t *testing.T) {
	store := NewGeneralLedgerTransactions()

	_, err := store.AddJournal(balancedJournal("gnl", day(time.January, 1), 100))
	require.NoError(t, err)
	_, err = store.AddJournal(balancedJournal("gnl", day(time.February, 1), 40))
	require.NoError(t, err)

	balances := store.Balances()
	assert.Equal(t, int64(140), balances["abc"])
	assert.Equal(t, int64(-140), balances["def"])
}

func TestCreateOppositeJournal(t *testing.T) {
	journal := balancedJournal("gnl", day(time.March, 3), 77)

	opposite := CreateOppositeJournal(journal)

	require.Len(t, opposite.Lines, 2)
	assert.Equal(t, int64(-77), opposite.Lines[0].Amount)
	assert.Equal(t, int64(77), opposite.Lines[1].Amount)
	assert.Equal(t, journal.Lines[0].Nominal, opposite.Lines[0].Nominal)
	// Input untouched.
	assert.Equal(t, int64(77), journal.Lines[0].Amount)
}
