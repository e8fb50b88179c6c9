package domain

import "time"

// JournalLine is a single nominal posting within a journal. Amounts are
// signed minor currency units: debits positive, credits negative.
type JournalLine struct {
	Nominal         string    `json:"nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
}

// Journal is the General Ledger unit of work: an ordered set of lines that
// must sum to zero before any of them is persisted.
type Journal struct {
	JnlType         string        `json:"jnlType"`
	TransactionDate time.Time     `json:"transactionDate"`
	Lines           []JournalLine `json:"lines"`
}

// Total returns the sum of all line amounts. A well-formed journal totals zero.
func (j Journal) Total() int64 {
	var total int64
	for _, line := range j.Lines {
		total += line.Amount
	}
	return total
}

// GeneralLedgerTransaction is one persisted journal line. All lines posted by
// a single AddJournal call share one JnlID.
type GeneralLedgerTransaction struct {
	TransactionID   uint64    `json:"transactionID"`
	JnlID           uint64    `json:"jnlID"`
	Nominal         string    `json:"nominal"`
	JnlType         string    `json:"jnlType"`
	Amount          int64     `json:"amount"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	Period          int       `json:"period"`
}

// TransactionRef implements the ledger-transaction contract used by the
// dispersals logger.
func (t GeneralLedgerTransaction) TransactionRef() uint64 {
	return t.TransactionID
}
