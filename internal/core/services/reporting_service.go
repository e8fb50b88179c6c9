package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
	"github.com/HaeckelK/bookkeeping/internal/middleware"
)

// ReportingService derives read-only views over the General Ledger and the
// chart of accounts.
type ReportingService struct {
	general *ledger.GeneralLedgerTransactions
	chart   *ledger.ChartOfAccounts
}

// NewReportingService creates a reporting service over the given stores.
func NewReportingService(general *ledger.GeneralLedgerTransactions, chart *ledger.ChartOfAccounts) *ReportingService {
	return &ReportingService{general: general, chart: chart}
}

// TrialBalance returns one row per nominal with its closing balance. Chart
// nominals come first in registration order, including those with no
// postings; nominals posted to but missing from the chart follow sorted by
// name with empty metadata.
func (s *ReportingService) TrialBalance(ctx context.Context) []domain.TrialBalanceRow {
	logger := middleware.GetLoggerFromCtx(ctx)
	balances := s.general.Balances()

	rows := make([]domain.TrialBalanceRow, 0, len(balances))
	for _, nominal := range s.chart.Nominals() {
		rows = append(rows, domain.TrialBalanceRow{
			Nominal:   nominal.Name,
			Statement: nominal.Statement,
			Heading:   nominal.Heading,
			Balance:   balances[nominal.Name],
		})
		delete(balances, nominal.Name)
	}

	unknown := make([]string, 0, len(balances))
	for name := range balances {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		rows = append(rows, domain.TrialBalanceRow{Nominal: name, Balance: balances[name]})
	}
	if len(unknown) > 0 {
		logger.Warn("Trial balance includes nominals missing from the chart",
			slog.Int("count", len(unknown)))
	}
	return rows
}
