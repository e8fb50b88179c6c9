package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
)

func TestReportingServiceTrialBalance(t *testing.T) {
	general := ledger.NewGeneralLedgerTransactions()
	chart := ledger.NewChartOfAccounts()
	require.NoError(t, chart.AddNominal(domain.NominalAccount{
		Name: "bank_current", Statement: domain.BalanceSheet, Heading: "current assets",
	}))
	require.NoError(t, chart.AddNominal(domain.NominalAccount{
		Name: "sales", Statement: domain.ProfitAndLoss, Heading: "revenue",
	}))
	require.NoError(t, chart.AddNominal(domain.NominalAccount{
		Name: "materials", Statement: domain.ProfitAndLoss, Heading: "expenses",
	}))

	_, err := general.AddJournal(domain.Journal{
		JnlType:         "bank",
		TransactionDate: time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{Nominal: "bank_current", Amount: 9000},
			{Nominal: "sales", Amount: -9000},
		},
	})
	require.NoError(t, err)

	service := NewReportingService(general, chart)
	rows := service.TrialBalance(context.Background())

	require.Len(t, rows, 3)
	// Chart registration order, nominals without postings included.
	assert.Equal(t, "bank_current", rows[0].Nominal)
	assert.Equal(t, int64(9000), rows[0].Balance)
	assert.Equal(t, "current assets", rows[0].Heading)
	assert.Equal(t, "sales", rows[1].Nominal)
	assert.Equal(t, int64(-9000), rows[1].Balance)
	assert.Equal(t, "materials", rows[2].Nominal)
	assert.Equal(t, int64(0), rows[2].Balance)
}

func TestReportingServiceTrialBalanceUnknownNominals(t *testing.T) {
	general := ledger.NewGeneralLedgerTransactions()
	chart := ledger.NewChartOfAccounts()
	require.NoError(t, chart.AddNominal(domain.NominalAccount{Name: "bank_current", Statement: domain.BalanceSheet}))

	_, err := general.AddJournal(domain.Journal{
		JnlType:         "gnl",
		TransactionDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{Nominal: "zz_unknown", Amount: 50},
			{Nominal: "aa_unknown", Amount: -50},
		},
	})
	require.NoError(t, err)

	rows := NewReportingService(general, chart).TrialBalance(context.Background())

	require.Len(t, rows, 3)
	assert.Equal(t, "bank_current", rows[0].Nominal)
	// Off-chart nominals follow, sorted by name.
	assert.Equal(t, "aa_unknown", rows[1].Nominal)
	assert.Equal(t, int64(-50), rows[1].Balance)
	assert.Equal(t, "zz_unknown", rows[2].Nominal)
	assert.Empty(t, rows[1].Heading)
}
