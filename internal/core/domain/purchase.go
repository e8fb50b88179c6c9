package domain

import "time"

// NewPurchaseInvoiceLine is an externally supplied purchase invoice line.
// Amount is the cost as entered, positive.
type NewPurchaseInvoiceLine struct {
	Nominal         string    `json:"nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
	RawID           int64     `json:"rawID"`
}

// NewPurchaseInvoice is an externally supplied purchase invoice.
type NewPurchaseInvoice struct {
	Creditor string                   `json:"creditor"`
	Lines    []NewPurchaseInvoiceLine `json:"lines"`
}

// Total returns the sum of all line amounts.
func (i NewPurchaseInvoice) Total() int64 {
	var total int64
	for _, line := range i.Lines {
		total += line.Amount
	}
	return total
}

// NewPurchaseLedgerPayment is a creditor payment taken from the cashbook.
// Amount carries the cashbook sign (a payment out is negative).
type NewPurchaseLedgerPayment struct {
	RawID    int64     `json:"rawID"`
	Date     time.Time `json:"date"`
	Amount   int64     `json:"amount"`
	Creditor string    `json:"creditor"`
	BankCode string    `json:"bankCode"`
}

// SettledPurchase is a cashbook movement that both pays a creditor and
// identifies the invoice it settles. One settled purchase produces two
// linked purchase ledger rows in a single batch.
type SettledPurchase struct {
	RawID    int64     `json:"rawID"`
	Date     time.Time `json:"date"`
	Amount   int64     `json:"amount"`
	Creditor string    `json:"creditor"`
	Nominal  string    `json:"nominal"`
	Notes    string    `json:"notes"`
}

// PurchaseLedgerRow is a persisted purchase ledger row. Invoice rows are
// stored as credits (negative), settlements as the negation of the cashbook
// movement, so an open creditor carries a negative balance.
type PurchaseLedgerRow struct {
	TransactionID uint64       `json:"transactionID"`
	RawID         int64        `json:"rawID"`
	BatchID       uint32       `json:"batchID"`
	EntryType     string       `json:"entryType"`
	Creditor      string       `json:"creditor"`
	Date          time.Time    `json:"date"`
	Amount        int64        `json:"amount"`
	Notes         string       `json:"notes"`
	Nominal       string       `json:"nominal"`
	Settled       bool         `json:"settled"`
	Posting       PostingState `json:"posting"`
}

// TransactionRef implements the ledger-transaction contract used by the
// dispersals logger.
func (r PurchaseLedgerRow) TransactionRef() uint64 {
	return r.TransactionID
}
