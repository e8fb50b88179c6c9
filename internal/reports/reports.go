package reports

import (
	"strconv"
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// ReportWriter renders ledger listings and the trial balance to some output
// medium.
type ReportWriter interface {
	WriteBankLedger(rows []domain.BankTransaction) error
	WritePurchaseLedger(rows []domain.PurchaseLedgerRow) error
	WriteSalesLedger(rows []domain.SalesLedgerRow) error
	WriteGeneralLedger(rows []domain.GeneralLedgerTransaction) error
	WriteTrialBalance(rows []domain.TrialBalanceRow) error
}

// table is the writer-independent tabular form of a report.
type table struct {
	name    string
	headers []string
	rows    [][]string
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// formatAmount renders minor units as a major-unit decimal string.
func formatAmount(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := strconv.FormatInt(amount/100, 10) + "." + pad2(amount%100)
	if negative {
		return "-" + s
	}
	return s
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func bankLedgerTable(rows []domain.BankTransaction) table {
	t := table{
		name:    "bank_ledger",
		headers: []string{"transaction_id", "raw_id", "batch_id", "bank_code", "date", "transaction_type", "transfer_type", "description", "amount", "matched_account", "matched_type", "posting"},
	}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			strconv.FormatUint(r.TransactionID, 10),
			strconv.FormatInt(r.RawID, 10),
			strconv.FormatUint(uint64(r.BatchID), 10),
			r.BankCode,
			formatDate(r.Date),
			r.TransactionType,
			r.TransferType,
			r.Description,
			formatAmount(r.Amount),
			r.MatchedAccount,
			r.MatchedType,
			string(r.Posting),
		})
	}
	return t
}

func purchaseLedgerTable(rows []domain.PurchaseLedgerRow) table {
	t := table{
		name:    "purchase_ledger",
		headers: []string{"transaction_id", "raw_id", "batch_id", "entry_type", "creditor", "date", "amount", "notes", "nominal", "settled", "posting"},
	}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			strconv.FormatUint(r.TransactionID, 10),
			strconv.FormatInt(r.RawID, 10),
			strconv.FormatUint(uint64(r.BatchID), 10),
			r.EntryType,
			r.Creditor,
			formatDate(r.Date),
			formatAmount(r.Amount),
			r.Notes,
			r.Nominal,
			strconv.FormatBool(r.Settled),
			string(r.Posting),
		})
	}
	return t
}

func salesLedgerTable(rows []domain.SalesLedgerRow) table {
	t := table{
		name:    "sales_ledger",
		headers: []string{"transaction_id", "raw_id", "batch_id", "entry_type", "debtor", "date", "amount", "notes", "nominal", "settled", "posting"},
	}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			strconv.FormatUint(r.TransactionID, 10),
			strconv.FormatInt(r.RawID, 10),
			strconv.FormatUint(uint64(r.BatchID), 10),
			r.EntryType,
			r.Debtor,
			formatDate(r.Date),
			formatAmount(r.Amount),
			r.Notes,
			r.Nominal,
			strconv.FormatBool(r.Settled),
			string(r.Posting),
		})
	}
	return t
}

func generalLedgerTable(rows []domain.GeneralLedgerTransaction) table {
	t := table{
		name:    "general_ledger",
		headers: []string{"transaction_id", "jnl_id", "nominal", "jnl_type", "amount", "description", "date", "period"},
	}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			strconv.FormatUint(r.TransactionID, 10),
			strconv.FormatUint(r.JnlID, 10),
			r.Nominal,
			r.JnlType,
			formatAmount(r.Amount),
			r.Description,
			formatDate(r.TransactionDate),
			strconv.Itoa(r.Period),
		})
	}
	return t
}

func trialBalanceTable(rows []domain.TrialBalanceRow) table {
	t := table{
		name:    "trial_balance",
		headers: []string{"nominal", "statement", "heading", "balance"},
	}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			r.Nominal,
			string(r.Statement),
			r.Heading,
			formatAmount(r.Balance),
		})
	}
	return t
}
