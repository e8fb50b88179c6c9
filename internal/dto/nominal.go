package dto

import (
	"github.com/HaeckelK/bookkeeping/internal/core/domain"
)

// CreateNominalRequest defines the payload for registering a nominal account.
type CreateNominalRequest struct {
	Name             string `json:"name" binding:"required,nominal"`
	Statement        string `json:"statement" binding:"required,oneof=bs pl"`
	Heading          string `json:"heading"`
	ExpectedSign     string `json:"expectedSign" binding:"omitempty,oneof=dr cr"`
	IsControlAccount bool   `json:"isControlAccount"`
	IsBankAccount    bool   `json:"isBankAccount"`
}

// ToDomainNominal converts the request into a domain nominal account.
func (r CreateNominalRequest) ToDomainNominal() domain.NominalAccount {
	return domain.NominalAccount{
		Name:             r.Name,
		Statement:        domain.Statement(r.Statement),
		Heading:          r.Heading,
		ExpectedSign:     domain.ExpectedSign(r.ExpectedSign),
		IsControlAccount: r.IsControlAccount,
		IsBankAccount:    r.IsBankAccount,
	}
}

// NominalResponse defines the data returned for a nominal account.
type NominalResponse struct {
	Name             string `json:"name"`
	Statement        string `json:"statement"`
	Heading          string `json:"heading"`
	ExpectedSign     string `json:"expectedSign"`
	IsControlAccount bool   `json:"isControlAccount"`
	IsBankAccount    bool   `json:"isBankAccount"`
}

// ToNominalResponse converts a domain nominal account to its response DTO.
func ToNominalResponse(n domain.NominalAccount) NominalResponse {
	return NominalResponse{
		Name:             n.Name,
		Statement:        string(n.Statement),
		Heading:          n.Heading,
		ExpectedSign:     string(n.ExpectedSign),
		IsControlAccount: n.IsControlAccount,
		IsBankAccount:    n.IsBankAccount,
	}
}

// ToNominalResponses converts a slice of domain nominal accounts.
func ToNominalResponses(nominals []domain.NominalAccount) []NominalResponse {
	responses := make([]NominalResponse, len(nominals))
	for i, n := range nominals {
		responses[i] = ToNominalResponse(n)
	}
	return responses
}
