package ledger

import (
	"fmt"

	"github.com/HaeckelK/bookkeeping/internal/apperrors"
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// PrepaymentsNominal is the suspense nominal that holds amounts awaiting
// release back into the target nominal.
const PrepaymentsNominal = "prepayments"

// PrepaymentJnlType tags journals produced by prepayment amortization.
const PrepaymentJnlType = "prepayment"

// Prepayment describes an amount to amortize over a number of periods.
type Prepayment struct {
	Amount               int64
	Nominal              string
	PeriodStart          int
	Periods              int
	Description          string
	DescriptionRecurring string
}

// CreatePrepaymentJournals builds Periods+1 balanced journals: an initial
// journal moving the full amount out of the target nominal into the
// prepayments suspense nominal, then one release journal per period moving
// Amount/Periods back. The integer-division remainder is folded into the
// first release so the suspense nominal nets to exactly zero across the
// whole set. Journals are generated, not posted.
func (g *GeneralLedger) CreatePrepaymentJournals(p Prepayment) ([]domain.Journal, error) {
	if p.Periods <= 0 {
		return nil, fmt.Errorf("%w: prepayment must span at least one period", apperrors.ErrValidation)
	}
	if p.Nominal == "" {
		return nil, fmt.Errorf("%w: prepayment nominal is required", apperrors.ErrValidation)
	}

	start, err := g.calendar.PeriodStart(p.PeriodStart)
	if err != nil {
		return nil, err
	}

	journals := make([]domain.Journal, 0, p.Periods+1)
	journals = append(journals, domain.Journal{
		JnlType:         PrepaymentJnlType,
		TransactionDate: start,
		Lines: []domain.JournalLine{
			{Nominal: PrepaymentsNominal, Description: p.Description, Amount: p.Amount, TransactionDate: start},
			{Nominal: p.Nominal, Description: p.Description, Amount: -p.Amount, TransactionDate: start},
		},
	})

	share := p.Amount / int64(p.Periods)
	remainder := p.Amount - share*int64(p.Periods)
	for i := 1; i <= p.Periods; i++ {
		release := share
		if i == 1 {
			release += remainder
		}
		date, err := g.calendar.PeriodStart(p.PeriodStart + i)
		if err != nil {
			return nil, err
		}
		journals = append(journals, domain.Journal{
			JnlType:         PrepaymentJnlType,
			TransactionDate: date,
			Lines: []domain.JournalLine{
				{Nominal: p.Nominal, Description: p.DescriptionRecurring, Amount: release, TransactionDate: date},
				{Nominal: PrepaymentsNominal, Description: p.DescriptionRecurring, Amount: -release, TransactionDate: date},
			},
		})
	}
	return journals, nil
}
