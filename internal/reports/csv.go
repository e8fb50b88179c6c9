package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// CSVReportWriter writes one CSV file per report into a directory.
type CSVReportWriter struct {
	dir string
}

var _ ReportWriter = (*CSVReportWriter)(nil)

// NewCSVReportWriter creates a writer targeting dir, creating it if needed.
func NewCSVReportWriter(dir string) (*CSVReportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	return &CSVReportWriter{dir: dir}, nil
}

func (w *CSVReportWriter) WriteBankLedger(rows []domain.BankTransaction) error {
	return w.write(bankLedgerTable(rows))
}

func (w *CSVReportWriter) WritePurchaseLedger(rows []domain.PurchaseLedgerRow) error {
	return w.write(purchaseLedgerTable(rows))
}

func (w *CSVReportWriter) WriteSalesLedger(rows []domain.SalesLedgerRow) error {
	return w.write(salesLedgerTable(rows))
}

func (w *CSVReportWriter) WriteGeneralLedger(rows []domain.GeneralLedgerTransaction) error {
	return w.write(generalLedgerTable(rows))
}

func (w *CSVReportWriter) WriteTrialBalance(rows []domain.TrialBalanceRow) error {
	return w.write(trialBalanceTable(rows))
}

func (w *CSVReportWriter) write(t table) error {
	path := filepath.Join(w.dir, t.name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.headers); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := writer.WriteAll(t.rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
