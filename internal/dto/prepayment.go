package dto

import (
	"time"

	"github.com/HaeckelK/bookkeeping/internal/core/domain"
	"github.com/HaeckelK/bookkeeping/internal/core/ledger"
)

// CreatePrepaymentRequest defines the payload for generating prepayment
// amortization journals.
type CreatePrepaymentRequest struct {
	Amount               int64  `json:"amount" binding:"required,gt=0"`
	Nominal              string `json:"nominal" binding:"required,nominal"`
	PeriodStart          int    `json:"periodStart" binding:"required,min=1,max=12"`
	Periods              int    `json:"periods" binding:"required,min=1"`
	Description          string `json:"description"`
	DescriptionRecurring string `json:"descriptionRecurring"`
}

// ToPrepayment converts the request into the ledger's prepayment input.
func (r CreatePrepaymentRequest) ToPrepayment() ledger.Prepayment {
	return ledger.Prepayment{
		Amount:               r.Amount,
		Nominal:              r.Nominal,
		PeriodStart:          r.PeriodStart,
		Periods:              r.Periods,
		Description:          r.Description,
		DescriptionRecurring: r.DescriptionRecurring,
	}
}

// JournalPreviewLine is one line of a generated journal.
type JournalPreviewLine struct {
	Nominal         string    `json:"nominal"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	TransactionDate time.Time `json:"transactionDate"`
}

// JournalPreview is one generated journal awaiting posting.
type JournalPreview struct {
	JnlType         string               `json:"jnlType"`
	TransactionDate time.Time            `json:"transactionDate"`
	Lines           []JournalPreviewLine `json:"lines"`
}

// ToJournalPreviews converts generated domain journals to response DTOs.
func ToJournalPreviews(journals []domain.Journal) []JournalPreview {
	previews := make([]JournalPreview, len(journals))
	for i, journal := range journals {
		lines := make([]JournalPreviewLine, len(journal.Lines))
		for j, line := range journal.Lines {
			lines[j] = JournalPreviewLine{
				Nominal:         line.Nominal,
				Description:     line.Description,
				Amount:          line.Amount,
				TransactionDate: line.TransactionDate,
			}
		}
		previews[i] = JournalPreview{
			JnlType:         journal.JnlType,
			TransactionDate: journal.TransactionDate,
			Lines:           lines,
		}
	}
	return previews
}
