package domain

import "time"

// NewSalesInvoiceLine is an externally supplied sales invoice line.
// Amount is the revenue as entered, positive.
type NewSalesInvoiceLine struct {
	Nominal         string    `json:"nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
	RawID           int64     `json:"rawID"`
}

// NewSalesInvoice is an externally supplied sales invoice.
type NewSalesInvoice struct {
	Debtor string                `json:"debtor"`
	Lines  []NewSalesInvoiceLine `json:"lines"`
}

// Total returns the sum of all line amounts.
func (i NewSalesInvoice) Total() int64 {
	var total int64
	for _, line := range i.Lines {
		total += line.Amount
	}
	return total
}

// NewSalesLedgerReceipt is a debtor receipt taken from the cashbook.
// Amount carries the cashbook sign (a receipt is positive).
type NewSalesLedgerReceipt struct {
	RawID    int64     `json:"rawID"`
	Date     time.Time `json:"date"`
	Amount   int64     `json:"amount"`
	Debtor   string    `json:"debtor"`
	BankCode string    `json:"bankCode"`
}

// SettledSale is a cashbook movement that both banks a receipt and
// identifies the invoice it settles. One settled sale produces two linked
// sales ledger rows in a single batch.
type SettledSale struct {
	RawID   int64     `json:"rawID"`
	Date    time.Time `json:"date"`
	Amount  int64     `json:"amount"`
	Debtor  string    `json:"debtor"`
	Nominal string    `json:"nominal"`
	Notes   string    `json:"notes"`
}

// SalesLedgerRow is a persisted sales ledger row. Invoice rows are stored as
// debits (positive), settlements as the negation of the cashbook movement,
// so an open debtor carries a positive balance.
type SalesLedgerRow struct {
	TransactionID uint64       `json:"transactionID"`
	RawID         int64        `json:"rawID"`
	BatchID       uint32       `json:"batchID"`
	EntryType     string       `json:"entryType"`
	Debtor        string       `json:"debtor"`
	Date          time.Time    `json:"date"`
	Amount        int64        `json:"amount"`
	Notes         string       `json:"notes"`
	Nominal       string       `json:"nominal"`
	Settled       bool         `json:"settled"`
	Posting       PostingState `json:"posting"`
}

// TransactionRef implements the ledger-transaction contract used by the
// dispersals logger.
func (r SalesLedgerRow) TransactionRef() uint64 {
	return r.TransactionID
}
