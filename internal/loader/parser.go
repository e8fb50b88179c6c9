package loader

import (
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// SourceDataParser slices a loaded cashbook into the views each sub-ledger
// ingests. Classification rules: a row with a creditor or debtor and a PL
// nominal is a settled invoice; with a counterparty but no nominal it is an
// unmatched payment or receipt.
type SourceDataParser struct {
	rows []CashbookRow
}

// RegisterSourceData sets the cashbook rows the views read from.
func (p *SourceDataParser) RegisterSourceData(rows []CashbookRow) {
	p.rows = rows
}

// BankTransactions returns every cashbook row as a raw bank movement for the
// given bank code, with its matched account and type derived from the
// classification columns.
func (p *SourceDataParser) BankTransactions(bankCode string) []domain.RawBankTransaction {
	out := make([]domain.RawBankTransaction, 0, len(p.rows))
	for _, row := range p.rows {
		matchedAccount, matchedType := matched(row)
		out = append(out, domain.RawBankTransaction{
			RawID:           row.RawID,
			BankCode:        bankCode,
			TransferType:    row.TransferType,
			TransactionType: row.TransactionType,
			MatchedAccount:  matchedAccount,
			MatchedType:     matchedType,
			Description:     row.Description,
			Amount:          row.Amount,
			Date:            row.Date,
		})
	}
	return out
}

// SettledPurchaseInvoices returns rows that both pay a creditor and name the
// PL nominal of the invoice they settle.
func (p *SourceDataParser) SettledPurchaseInvoices() []domain.SettledPurchase {
	var out []domain.SettledPurchase
	for _, row := range p.rows {
		if row.Creditor == "" || row.PL == "" {
			continue
		}
		out = append(out, domain.SettledPurchase{
			RawID:    row.RawID,
			Date:     row.Date,
			Amount:   row.Amount,
			Creditor: row.Creditor,
			Nominal:  row.PL,
			Notes:    row.Notes,
		})
	}
	return out
}

// UnmatchedCreditorPayments returns creditor payments with no nominal
// classification; the invoices they settle arrive separately.
func (p *SourceDataParser) UnmatchedCreditorPayments() []domain.NewPurchaseLedgerPayment {
	var out []domain.NewPurchaseLedgerPayment
	for _, row := range p.rows {
		if row.Creditor == "" || row.PL != "" || row.BS != "" {
			continue
		}
		out = append(out, domain.NewPurchaseLedgerPayment{
			RawID:    row.RawID,
			Date:     row.Date,
			Amount:   row.Amount,
			Creditor: row.Creditor,
			BankCode: row.Bank,
		})
	}
	return out
}

// SettledSalesInvoices returns rows that both bank a debtor receipt and name
// the PL nominal of the invoice they settle.
func (p *SourceDataParser) SettledSalesInvoices() []domain.SettledSale {
	var out []domain.SettledSale
	for _, row := range p.rows {
		if row.Debtor == "" || row.PL == "" {
			continue
		}
		out = append(out, domain.SettledSale{
			RawID:   row.RawID,
			Date:    row.Date,
			Amount:  row.Amount,
			Debtor:  row.Debtor,
			Nominal: row.PL,
			Notes:   row.Notes,
		})
	}
	return out
}

// UnmatchedDebtorReceipts returns debtor receipts with no nominal
// classification.
func (p *SourceDataParser) UnmatchedDebtorReceipts() []domain.NewSalesLedgerReceipt {
	var out []domain.NewSalesLedgerReceipt
	for _, row := range p.rows {
		if row.Debtor == "" || row.PL != "" || row.BS != "" {
			continue
		}
		out = append(out, domain.NewSalesLedgerReceipt{
			RawID:    row.RawID,
			Date:     row.Date,
			Amount:   row.Amount,
			Debtor:   row.Debtor,
			BankCode: row.Bank,
		})
	}
	return out
}

func matched(row CashbookRow) (account, matchedType string) {
	switch {
	case row.Creditor != "":
		return row.Creditor, domain.MatchedTypeCreditor
	case row.Debtor != "":
		return row.Debtor, domain.MatchedTypeDebtor
	case row.BS != "":
		return row.BS, domain.MatchedTypeBalanceSheet
	default:
		return "", ""
	}
}
