package services

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountReaderSvc defines read operations on bank accounts
type BankAccountReaderSvc interface {
	// GetBankAccount returns apperrors.ErrAccountNotFound when the account is absent.
	GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error)
	// ListBankAccounts returns every account of a known variant.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	// ListCustomerAccounts returns apperrors.ErrCustomerNotFound when the customer is absent.
	ListCustomerAccounts(ctx context.Context, customerID int64) ([]domain.BankAccount, error)
}

// BankAccountWriterSvc defines account opening operations
type BankAccountWriterSvc interface {
	SaveCurrentBankAccount(ctx context.Context, initialBalance, overDraft decimal.Decimal, customerID int64) (*domain.BankAccount, error)
	SaveSavingBankAccount(ctx context.Context, initialBalance, interestRate decimal.Decimal, customerID int64) (*domain.BankAccount, error)
}

// BankAccountSvcFacade combines all bank account service interfaces
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}
