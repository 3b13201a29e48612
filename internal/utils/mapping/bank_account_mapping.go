package mapping

import (
	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount.
// The variant-specific column of the other variant is left NULL.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	m := models.BankAccount{
		ID:            d.ID,
		AccountType:   string(d.Kind),
		Balance:       d.Balance,
		CreatedAt:     d.CreatedAt,
		Status:        string(d.Status),
		CustomerID:    d.Customer.ID,
		CustomerName:  d.Customer.Name,
		CustomerEmail: d.Customer.Email,
	}
	switch d.Kind {
	case domain.CurrentAccountKind:
		m.OverDraft = decimal.NewNullDecimal(d.OverDraft)
	case domain.SavingAccountKind:
		m.InterestRate = decimal.NewNullDecimal(d.InterestRate)
	}
	return m
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount.
// The discriminator is copied as is; callers decide what to do with unknown kinds.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	d := domain.BankAccount{
		ID:        m.ID,
		Kind:      domain.AccountKind(m.AccountType),
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		Status:    domain.AccountStatus(m.Status),
		Customer: domain.Customer{
			ID:    m.CustomerID,
			Name:  m.CustomerName,
			Email: m.CustomerEmail,
		},
	}
	if m.OverDraft.Valid {
		d.OverDraft = m.OverDraft.Decimal
	}
	if m.InterestRate.Valid {
		d.InterestRate = m.InterestRate.Decimal
	}
	return d
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
