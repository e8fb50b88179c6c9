package dto

import (
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// JournalLineRequest is one line of a journal being posted.
type JournalLineRequest struct {
	Nominal         string    `json:"nominal" binding:"required,nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount" binding:"required"`
	TransactionDate time.Time `json:"transactionDate" binding:"required"`
}

// CreateJournalRequest defines the payload for posting a journal. Lines must
// sum to zero; that is enforced by the ledger, not the binding.
type CreateJournalRequest struct {
	JnlType         string               `json:"jnlType" binding:"required"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToDomainJournal converts the request into a domain journal.
func (r CreateJournalRequest) ToDomainJournal() domain.Journal {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.JournalLine{
			Nominal:         line.Nominal,
			Description:     line.Description,
			Amount:          line.Amount,
			TransactionDate: line.TransactionDate,
		}
	}
	return domain.Journal{
		JnlType:         r.JnlType,
		TransactionDate: r.TransactionDate,
		Lines:           lines,
	}
}

// CreateJournalResponse returns the transaction IDs assigned to the posted
// lines, including any reversal lines.
type CreateJournalResponse struct {
	TransactionIDs []uint64 `json:"transactionIDs"`
}

// GeneralLedgerTransactionResponse defines the data returned for one General
// Ledger line.
type GeneralLedgerTransactionResponse struct {
	TransactionID   uint64    `json:"transactionID"`
	JnlID           uint64    `json:"jnlID"`
	Nominal         string    `json:"nominal"`
	JnlType         string    `json:"jnlType"`
	Amount          int64     `json:"amount"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	Period          int       `json:"period"`
}

// ToGeneralLedgerTransactionResponses converts domain rows to response DTOs.
func ToGeneralLedgerTransactionResponses(rows []domain.GeneralLedgerTransaction) []GeneralLedgerTransactionResponse {
	responses := make([]GeneralLedgerTransactionResponse, len(rows))
	for i, row := range rows {
		responses[i] = GeneralLedgerTransactionResponse{
			TransactionID:   row.TransactionID,
			JnlID:           row.JnlID,
			Nominal:         row.Nominal,
			JnlType:         row.JnlType,
			Amount:          row.Amount,
			Description:     row.Description,
			TransactionDate: row.TransactionDate,
			Period:          row.Period,
		}
	}
	return responses
}
