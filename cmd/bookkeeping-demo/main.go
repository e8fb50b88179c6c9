package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/services"
	"github.com/HaeckelK/bookkeeping/internal/loader"
	"github.com/HaeckelK/bookkeeping/internal/platform/config"
	"github.com/HaeckelK/bookkeeping/internal/reports"
)

// The demo runs the whole pipeline once: ingest a cashbook CSV into the
// sub-ledgers, disperse everything to the General Ledger, reconcile the
// control accounts and write the ledger listings plus the trial balance.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()
	container := services.NewContainer(cfg.CalendarYear)
	bankCode := cfg.DefaultBankCode

	logger.Info("Loading cashbook", slog.String("path", cfg.CashbookPath))
	rows, err := loader.LoadCashbookFile(cfg.CashbookPath)
	if err != nil {
		return err
	}
	logger.Info("Cashbook loaded", slog.Int("rows", len(rows)))

	parser := &loader.SourceDataParser{}
	parser.RegisterSourceData(rows)

	if err := container.Chart.AddNominal(domain.NominalAccount{
		Name:          bankCode,
		Statement:     domain.BalanceSheet,
		Heading:       "bank accounts",
		IsBankAccount: true,
	}); err != nil {
		return err
	}

	container.Bank.AddTransactions(parser.BankTransactions(bankCode))
	container.Purchases.AddSettledTransactions(parser.SettledPurchaseInvoices(), bankCode)
	container.Purchases.AddPayments(parser.UnmatchedCreditorPayments())
	container.Sales.AddSettledTransactions(parser.SettledSalesInvoices(), bankCode)
	container.Sales.AddReceipts(parser.UnmatchedDebtorReceipts())

	err = container.PeriodClose.Close(ctx)
	var recErr *services.ReconciliationError
	if errors.As(err, &recErr) {
		// Reports are still worth writing when the books do not balance.
		logger.Error("Control accounts do not reconcile", slog.String("error", recErr.Error()))
	} else if err != nil {
		return err
	} else {
		logger.Info("Control accounts reconciled")
	}

	if err := writeReports(ctx, cfg, container); err != nil {
		return err
	}
	logger.Info("Reports written", slog.String("dir", cfg.ReportsDir))
	return err
}

func writeReports(ctx context.Context, cfg *config.Config, container *services.Container) error {
	csvWriter, err := reports.NewCSVReportWriter(cfg.ReportsDir)
	if err != nil {
		return err
	}
	htmlWriter, err := reports.NewHTMLReportWriter(filepath.Join(cfg.ReportsDir, "html"))
	if err != nil {
		return err
	}

	trialBalance := container.Reporting.TrialBalance(ctx)
	for _, w := range []reports.ReportWriter{csvWriter, htmlWriter} {
		if err := w.WriteBankLedger(container.Bank.ListTransactions()); err != nil {
			return err
		}
		if err := w.WritePurchaseLedger(container.Purchases.ListTransactions()); err != nil {
			return err
		}
		if err := w.WriteSalesLedger(container.Sales.ListTransactions()); err != nil {
			return err
		}
		if err := w.WriteGeneralLedger(container.General.Transactions.ListTransactions()); err != nil {
			return err
		}
		if err := w.WriteTrialBalance(trialBalance); err != nil {
			return err
		}
	}
	return nil
}
