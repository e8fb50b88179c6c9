package dto

import (
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// PurchaseInvoiceLineRequest is one line of a purchase invoice.
type PurchaseInvoiceLineRequest struct {
	Nominal         string    `json:"nominal" binding:"required,nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount" binding:"required,gt=0"`
	TransactionDate time.Time `json:"transactionDate" binding:"required"`
}

// PurchaseInvoiceRequest is one purchase invoice to add to the purchase
// ledger. Amounts are the costs as entered, positive.
type PurchaseInvoiceRequest struct {
	Creditor string                       `json:"creditor" binding:"required"`
	Lines    []PurchaseInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreatePurchaseInvoicesRequest defines the payload for adding purchase
// invoices.
type CreatePurchaseInvoicesRequest struct {
	Invoices []PurchaseInvoiceRequest `json:"invoices" binding:"required,min=1,dive"`
}

// ToDomainInvoices converts the request into domain invoices.
func (r CreatePurchaseInvoicesRequest) ToDomainInvoices() []domain.NewPurchaseInvoice {
	invoices := make([]domain.NewPurchaseInvoice, len(r.Invoices))
	for i, invoice := range r.Invoices {
		lines := make([]domain.NewPurchaseInvoiceLine, len(invoice.Lines))
		for j, line := range invoice.Lines {
			lines[j] = domain.NewPurchaseInvoiceLine{
				Nominal:         line.Nominal,
				Description:     line.Description,
				Amount:          line.Amount,
				TransactionDate: line.TransactionDate,
			}
		}
		invoices[i] = domain.NewPurchaseInvoice{Creditor: invoice.Creditor, Lines: lines}
	}
	return invoices
}

// SalesInvoiceLineRequest is one line of a sales invoice.
type SalesInvoiceLineRequest struct {
	Nominal         string    `json:"nominal" binding:"required,nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount" binding:"required,gt=0"`
	TransactionDate time.Time `json:"transactionDate" binding:"required"`
}

// SalesInvoiceRequest is one sales invoice to add to the sales ledger.
type SalesInvoiceRequest struct {
	Debtor string                    `json:"debtor" binding:"required"`
	Lines  []SalesInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateSalesInvoicesRequest defines the payload for adding sales invoices.
type CreateSalesInvoicesRequest struct {
	Invoices []SalesInvoiceRequest `json:"invoices" binding:"required,min=1,dive"`
}

// ToDomainInvoices converts the request into domain invoices.
func (r CreateSalesInvoicesRequest) ToDomainInvoices() []domain.NewSalesInvoice {
	invoices := make([]domain.NewSalesInvoice, len(r.Invoices))
	for i, invoice := range r.Invoices {
		lines := make([]domain.NewSalesInvoiceLine, len(invoice.Lines))
		for j, line := range invoice.Lines {
			lines[j] = domain.NewSalesInvoiceLine{
				Nominal:         line.Nominal,
				Description:     line.Description,
				Amount:          line.Amount,
				TransactionDate: line.TransactionDate,
			}
		}
		invoices[i] = domain.NewSalesInvoice{Debtor: invoice.Debtor, Lines: lines}
	}
	return invoices
}

// BankTransactionRequest is one raw bank movement, signed from the bank's
// perspective.
type BankTransactionRequest struct {
	BankCode        string    `json:"bankCode" binding:"required,nominal"`
	TransferType    string    `json:"transferType"`
	TransactionType string    `json:"transactionType"`
	MatchedAccount  string    `json:"matchedAccount"`
	MatchedType     string    `json:"matchedType" binding:"omitempty,oneof=creditor debtor bs"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount" binding:"required"`
	Date            time.Time `json:"date" binding:"required"`
}

// CreateBankTransactionsRequest defines the payload for adding raw bank
// movements.
type CreateBankTransactionsRequest struct {
	Transactions []BankTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// ToDomainTransactions converts the request into domain bank transactions.
func (r CreateBankTransactionsRequest) ToDomainTransactions() []domain.RawBankTransaction {
	out := make([]domain.RawBankTransaction, len(r.Transactions))
	for i, txn := range r.Transactions {
		out[i] = domain.RawBankTransaction{
			BankCode:        txn.BankCode,
			TransferType:    txn.TransferType,
			TransactionType: txn.TransactionType,
			MatchedAccount:  txn.MatchedAccount,
			MatchedType:     txn.MatchedType,
			Description:     txn.Description,
			Amount:          txn.Amount,
			Date:            txn.Date,
		}
	}
	return out
}

// AddTransactionsResponse returns the transaction IDs assigned to newly
// added sub-ledger rows.
type AddTransactionsResponse struct {
	TransactionIDs []uint64 `json:"transactionIDs"`
}

// BalanceResponse is a single ledger balance in minor units.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// BankTransactionResponse defines the data returned for a bank ledger row.
type BankTransactionResponse struct {
	TransactionID   uint64    `json:"transactionID"`
	RawID           int64     `json:"rawID"`
	BatchID         uint32    `json:"batchID"`
	BankCode        string    `json:"bankCode"`
	TransferType    string    `json:"transferType"`
	TransactionType string    `json:"transactionType"`
	MatchedAccount  string    `json:"matchedAccount"`
	MatchedType     string    `json:"matchedType"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	Date            time.Time `json:"date"`
	Posting         string    `json:"posting"`
}

// ToBankTransactionResponses converts domain rows to response DTOs.
func ToBankTransactionResponses(rows []domain.BankTransaction) []BankTransactionResponse {
	responses := make([]BankTransactionResponse, len(rows))
	for i, row := range rows {
		responses[i] = BankTransactionResponse{
			TransactionID:   row.TransactionID,
			RawID:           row.RawID,
			BatchID:         row.BatchID,
			BankCode:        row.BankCode,
			TransferType:    row.TransferType,
			TransactionType: row.TransactionType,
			MatchedAccount:  row.MatchedAccount,
			MatchedType:     row.MatchedType,
			Description:     row.Description,
			Amount:          row.Amount,
			Date:            row.Date,
			Posting:         string(row.Posting),
		}
	}
	return responses
}

// PurchaseLedgerRowResponse defines the data returned for a purchase ledger
// row.
type PurchaseLedgerRowResponse struct {
	TransactionID uint64    `json:"transactionID"`
	RawID         int64     `json:"rawID"`
	BatchID       uint32    `json:"batchID"`
	EntryType     string    `json:"entryType"`
	Creditor      string    `json:"creditor"`
	Date          time.Time `json:"date"`
	Amount        int64     `json:"amount"`
	Notes         string    `json:"notes"`
	Nominal       string    `json:"nominal"`
	Settled       bool      `json:"settled"`
	Posting       string    `json:"posting"`
}

// ToPurchaseLedgerRowResponses converts domain rows to response DTOs.
func ToPurchaseLedgerRowResponses(rows []domain.PurchaseLedgerRow) []PurchaseLedgerRowResponse {
	responses := make([]PurchaseLedgerRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = PurchaseLedgerRowResponse{
			TransactionID: row.TransactionID,
			RawID:         row.RawID,
			BatchID:       row.BatchID,
			EntryType:     row.EntryType,
			Creditor:      row.Creditor,
			Date:          row.Date,
			Amount:        row.Amount,
			Notes:         row.Notes,
			Nominal:       row.Nominal,
			Settled:       row.Settled,
			Posting:       string(row.Posting),
		}
	}
	return responses
}

// SalesLedgerRowResponse defines the data returned for a sales ledger row.
type SalesLedgerRowResponse struct {
	TransactionID uint64    `json:"transactionID"`
	RawID         int64     `json:"rawID"`
	BatchID       uint32    `json:"batchID"`
	EntryType     string    `json:"entryType"`
	Debtor        string    `json:"debtor"`
	Date          time.Time `json:"date"`
	Amount        int64     `json:"amount"`
	Notes         string    `json:"notes"`
	Nominal       string    `json:"nominal"`
	Settled       bool      `json:"settled"`
	Posting       string    `json:"posting"`
}

// ToSalesLedgerRowResponses converts domain rows to response DTOs.
func ToSalesLedgerRowResponses(rows []domain.SalesLedgerRow) []SalesLedgerRowResponse {
	responses := make([]SalesLedgerRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = SalesLedgerRowResponse{
			TransactionID: row.TransactionID,
			RawID:         row.RawID,
			BatchID:       row.BatchID,
			EntryType:     row.EntryType,
			Debtor:        row.Debtor,
			Date:          row.Date,
			Amount:        row.Amount,
			Notes:         row.Notes,
			Nominal:       row.Nominal,
			Settled:       row.Settled,
			Posting:       string(row.Posting),
		}
	}
	return responses
}
