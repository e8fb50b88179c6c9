package reports

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<table border="1">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

// HTMLReportWriter writes one HTML file per report into a directory.
type HTMLReportWriter struct {
	dir string
}

var _ ReportWriter = (*HTMLReportWriter)(nil)

// NewHTMLReportWriter creates a writer targeting dir, creating it if needed.
func NewHTMLReportWriter(dir string) (*HTMLReportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	return &HTMLReportWriter{dir: dir}, nil
}

func (w *HTMLReportWriter) WriteBankLedger(rows []domain.BankTransaction) error {
	return w.write(bankLedgerTable(rows))
}

func (w *HTMLReportWriter) WritePurchaseLedger(rows []domain.PurchaseLedgerRow) error {
	return w.write(purchaseLedgerTable(rows))
}

func (w *HTMLReportWriter) WriteSalesLedger(rows []domain.SalesLedgerRow) error {
	return w.write(salesLedgerTable(rows))
}

func (w *HTMLReportWriter) WriteGeneralLedger(rows []domain.GeneralLedgerTransaction) error {
	return w.write(generalLedgerTable(rows))
}

func (w *HTMLReportWriter) WriteTrialBalance(rows []domain.TrialBalanceRow) error {
	return w.write(trialBalanceTable(rows))
}

func (w *HTMLReportWriter) write(t table) error {
	path := filepath.Join(w.dir, t.name+".html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		Title   string
		Headers []string
		Rows    [][]string
	}{
		Title:   strings.ReplaceAll(t.name, "_", " "),
		Headers: t.headers,
		Rows:    t.rows,
	}
	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
