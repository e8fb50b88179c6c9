package services

import (
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
)

// Container holds the ledgers and services and manages their dependencies.
type Container struct {
	Bank      *ledger.BankLedger
	Purchases *ledger.PurchaseLedger
	Sales     *ledger.SalesLedger
	General   *ledger.GeneralLedger
	Chart     *ledger.ChartOfAccounts

	PeriodClose *PeriodCloseService
	Reporting   *ReportingService
}

// NewContainer creates a container with freshly wired ledgers for the given
// accounting year. The chart is seeded with the control accounts every
// installation needs.
func NewContainer(calendarYear int) *Container {
	bank := ledger.NewBankLedger()
	purchases := ledger.NewPurchaseLedger()
	sales := ledger.NewSalesLedger()
	chart := ledger.NewChartOfAccounts()
	transactions := ledger.NewGeneralLedgerTransactions()
	general := ledger.NewGeneralLedger(transactions, chart, ledger.NewMonthlyCalendar(calendarYear))

	for _, name := range []string{
		ledger.NominalPurchaseControl,
		ledger.NominalSalesControl,
		ledger.NominalBankContra,
	} {
		// A fresh chart cannot hold duplicates.
		_ = chart.AddNominal(domain.NominalAccount{
			Name:             name,
			Statement:        domain.BalanceSheet,
			Heading:          "control accounts",
			IsControlAccount: true,
		})
	}

	return &Container{
		Bank:      bank,
		Purchases: purchases,
		Sales:     sales,
		General:   general,
		Chart:     chart,
		PeriodClose: NewPeriodCloseService(
			bank, purchases, sales, general,
			ledger.NewInterLedgerJournalCreator(),
			ledger.NewDispersalsLogger(),
		),
		Reporting: NewReportingService(transactions, chart),
	}
}
