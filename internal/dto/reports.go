package dto

import (
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// TrialBalanceRowResponse defines one trial balance row.
type TrialBalanceRowResponse struct {
	Nominal   string `json:"nominal"`
	Statement string `json:"statement"`
	Heading   string `json:"heading"`
	Balance   int64  `json:"balance"`
}

// TrialBalanceResponse defines the trial balance report.
type TrialBalanceResponse struct {
	Rows []TrialBalanceRowResponse `json:"rows"`
}

// ToTrialBalanceResponse converts domain rows to the report DTO.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	out := make([]TrialBalanceRowResponse, len(rows))
	for i, row := range rows {
		out[i] = TrialBalanceRowResponse{
			Nominal:   row.Nominal,
			Statement: string(row.Statement),
			Heading:   row.Heading,
			Balance:   row.Balance,
		}
	}
	return TrialBalanceResponse{Rows: out}
}
