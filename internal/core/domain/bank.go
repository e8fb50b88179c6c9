package domain

import "time"

// MatchedType classifies a bank transaction by what it settles.
const (
	MatchedTypeCreditor     = "creditor"
	MatchedTypeDebtor       = "debtor"
	MatchedTypeBalanceSheet = "bs"
)

// RawBankTransaction is an externally supplied bank movement, signed from the
// bank account's perspective (money in positive, money out negative).
type RawBankTransaction struct {
	RawID           int64     `json:"rawID"`
	BankCode        string    `json:"bankCode"`
	TransferType    string    `json:"transferType"`
	TransactionType string    `json:"transactionType"`
	MatchedAccount  string    `json:"matchedAccount"`
	MatchedType     string    `json:"matchedType"` // creditor, debtor, bs or empty
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	Date            time.Time `json:"date"`
}

// BankTransaction is a persisted bank ledger row.
type BankTransaction struct {
	RawBankTransaction
	TransactionID uint64       `json:"transactionID"`
	BatchID       uint32       `json:"batchID"`
	Posting       PostingState `json:"posting"`
}

// TransactionRef implements the ledger-transaction contract used by the
// dispersals logger.
func (t BankTransaction) TransactionRef() uint64 {
	return t.TransactionID
}
