package dto

import (
	"time"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrentAccountRequest defines the data needed to open a current account.
type CreateCurrentAccountRequest struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
	OverDraft      decimal.Decimal `json:"overDraft"`
	CustomerID     int64           `json:"customerId" binding:"required"`
}

// CreateSavingAccountRequest defines the data needed to open a saving account.
type CreateSavingAccountRequest struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	CustomerID     int64           `json:"customerId" binding:"required"`
}

// BankAccountResponse defines the data returned for either account variant.
// Type is CurrentAccount or SavingAccount; only the matching variant field is set.
type BankAccountResponse struct {
	Type         string               `json:"type"`
	ID           string               `json:"id"`
	Balance      decimal.Decimal      `json:"balance"`
	CreatedAt    time.Time            `json:"createdAt"`
	Status       domain.AccountStatus `json:"status"`
	Customer     CustomerResponse     `json:"customerDTO"`
	OverDraft    *decimal.Decimal     `json:"overDraft,omitempty"`
	InterestRate *decimal.Decimal     `json:"interestRate,omitempty"`
}

const (
	CurrentAccountType = "CurrentAccount"
	SavingAccountType  = "SavingAccount"
)

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	res := BankAccountResponse{
		ID:        acc.ID,
		Balance:   acc.Balance,
		CreatedAt: acc.CreatedAt,
		Status:    acc.Status,
		Customer:  ToCustomerResponse(&acc.Customer),
	}
	switch acc.Kind {
	case domain.CurrentAccountKind:
		overDraft := acc.OverDraft
		res.Type = CurrentAccountType
		res.OverDraft = &overDraft
	case domain.SavingAccountKind:
		rate := acc.InterestRate
		res.Type = SavingAccountType
		res.InterestRate = &rate
	}
	return res
}

// ToListBankAccountResponse converts a slice of domain.BankAccount to BankAccountResponse DTOs
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}
