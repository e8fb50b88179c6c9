package domain

import "time"

// InvoiceLine is one nominal posting reconstructed from an unposted
// sub-ledger row. TransactionID references the source row so the caller can
// mark it extracted once the invoice has been dispersed.
type InvoiceLine struct {
	TransactionID   uint64    `json:"transactionID"`
	Nominal         string    `json:"nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
}

// Invoice is an unposted sub-ledger invoice awaiting dispersal to the
// General Ledger. Counterparty is the creditor or debtor name.
type Invoice struct {
	Counterparty string        `json:"counterparty"`
	Lines        []InvoiceLine `json:"lines"`
}

// Total returns the sum of all line amounts.
func (i Invoice) Total() int64 {
	var total int64
	for _, line := range i.Lines {
		total += line.Amount
	}
	return total
}
