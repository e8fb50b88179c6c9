package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// Ledger names registered with the dispersals logger.
const (
	LedgerNameBank      = "bank"
	LedgerNamePurchases = "purchases"
	LedgerNameSales     = "sales"
)

// ReconciliationMismatch is one failed control check.
type ReconciliationMismatch struct {
	Check    string `json:"check"`
	Expected int64  `json:"expected"`
	Actual   int64  `json:"actual"`
}

// ReconciliationError reports which control checks failed after a dispersal
// run.
type ReconciliationError struct {
	Mismatches []ReconciliationMismatch
}

func (e *ReconciliationError) Error() string {
	checks := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		checks[i] = fmt.Sprintf("%s expected %d got %d", m.Check, m.Expected, m.Actual)
	}
	return "reconciliation failed: " + strings.Join(checks, "; ")
}

func (e *ReconciliationError) Unwrap() error {
	return apperrors.ErrConflict
}

// PeriodCloseService moves unposted sub-ledger activity into the General
// Ledger and verifies the control accounts afterwards.
type PeriodCloseService struct {
	bank       *ledger.BankLedger
	purchases  *ledger.PurchaseLedger
	sales      *ledger.SalesLedger
	general    *ledger.GeneralLedger
	creator    *ledger.InterLedgerJournalCreator
	dispersals *ledger.DispersalsLogger
}

// NewPeriodCloseService wires the ledgers together and registers them with
// the dispersals logger.
func NewPeriodCloseService(
	bank *ledger.BankLedger,
	purchases *ledger.PurchaseLedger,
	sales *ledger.SalesLedger,
	general *ledger.GeneralLedger,
	creator *ledger.InterLedgerJournalCreator,
	dispersals *ledger.DispersalsLogger,
) *PeriodCloseService {
	dispersals.RegisterLedger(LedgerNameBank, bank)
	dispersals.RegisterLedger(LedgerNamePurchases, purchases)
	dispersals.RegisterLedger(LedgerNameSales, sales)
	return &PeriodCloseService{
		bank:       bank,
		purchases:  purchases,
		sales:      sales,
		general:    general,
		creator:    creator,
		dispersals: dispersals,
	}
}

// DisperseAll posts every unposted sub-ledger transaction to the General
// Ledger: purchase invoices, sales invoices, then grouped bank movements.
// Each source transaction is dispersed at most once.
func (s *PeriodCloseService) DisperseAll(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, js := range s.creator.CreatePLToGLJournals(s.purchases.UnpostedInvoices()) {
		if _, err := s.general.AddJournal(js.Journal); err != nil {
			return fmt.Errorf("dispersing purchase invoices: %w", err)
		}
		s.purchases.MarkExtractedToGL(js.SourceTransactionIDs)
		logger.Info("Dispersed purchase invoices to general ledger",
			slog.Int("transactions", len(js.SourceTransactionIDs)))
	}

	for _, js := range s.creator.CreateSLToGLJournals(s.sales.UnpostedInvoices()) {
		if _, err := s.general.AddJournal(js.Journal); err != nil {
			return fmt.Errorf("dispersing sales invoices: %w", err)
		}
		s.sales.MarkExtractedToGL(js.SourceTransactionIDs)
		logger.Info("Dispersed sales invoices to general ledger",
			slog.Int("transactions", len(js.SourceTransactionIDs)))
	}

	return s.disperseBank(ctx)
}

func (s *PeriodCloseService) disperseBank(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	undispersed, err := s.dispersals.UndispersedTransactions(LedgerNameBank)
	if err != nil {
		return fmt.Errorf("listing undispersed bank transactions: %w", err)
	}
	if len(undispersed) == 0 {
		return nil
	}

	transactions := make([]domain.BankTransaction, 0, len(undispersed))
	ids := make([]uint64, 0, len(undispersed))
	for _, txn := range undispersed {
		bankTxn, ok := txn.(domain.BankTransaction)
		if !ok {
			return fmt.Errorf("unexpected transaction type %T in bank ledger", txn)
		}
		transactions = append(transactions, bankTxn)
		ids = append(ids, bankTxn.TransactionID)
	}

	for _, journal := range s.creator.CreateBankToGLJournals(transactions) {
		if _, err := s.general.AddJournal(journal); err != nil {
			return fmt.Errorf("dispersing bank transactions: %w", err)
		}
	}
	if err := s.dispersals.LogDispersal(LedgerNameBank, undispersed); err != nil {
		return fmt.Errorf("logging bank dispersal: %w", err)
	}
	s.bank.MarkExtractedToGL(ids)

	logger.Info("Dispersed bank transactions to general ledger",
		slog.Int("transactions", len(transactions)))
	return nil
}

// Reconcile verifies the control accounts: the General Ledger must net to
// zero and each control account must equal its sub-ledger balance.
func (s *PeriodCloseService) Reconcile(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	balances := s.general.Transactions.Balances()

	var mismatches []ReconciliationMismatch
	if total := s.general.Transactions.Balance(); total != 0 {
		mismatches = append(mismatches, ReconciliationMismatch{
			Check:    "general ledger nets to zero",
			Expected: 0,
			Actual:   total,
		})
	}
	if plca, pl := balances[ledger.NominalPurchaseControl], s.purchases.Balance(); plca != pl {
		mismatches = append(mismatches, ReconciliationMismatch{
			Check:    "purchase ledger control account",
			Expected: pl,
			Actual:   plca,
		})
	}
	if slca, sl := balances[ledger.NominalSalesControl], s.sales.Balance(); slca != sl {
		mismatches = append(mismatches, ReconciliationMismatch{
			Check:    "sales ledger control account",
			Expected: sl,
			Actual:   slca,
		})
	}

	if len(mismatches) > 0 {
		err := &ReconciliationError{Mismatches: mismatches}
		logger.Error("Reconciliation failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Reconciliation passed")
	return nil
}

// Close disperses all sub-ledger activity and reconciles the result.
func (s *PeriodCloseService) Close(ctx context.Context) error {
	if err := s.DisperseAll(ctx); err != nil {
		return err
	}
	return s.Reconcile(ctx)
}
