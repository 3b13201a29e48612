package repositories

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank account data
type BankAccountReader interface {
	// FindBankAccountByID retrieves an account with its owner. Returns apperrors.ErrAccountNotFound when absent.
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// ListBankAccounts returns every account of both variants.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)

	// ListBankAccountsByCustomer returns the accounts owned by a customer.
	ListBankAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data
type BankAccountWriter interface {
	// SaveBankAccount inserts a new account of either variant.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
}

// BankAccountTxSupport defines the operations the ledger runs inside a transaction
type BankAccountTxSupport interface {
	// FindBankAccountsByIDsForUpdate locks the rows of the given accounts, in id order,
	// and returns them keyed by id. Returns apperrors.ErrAccountNotFound if any is missing.
	FindBankAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error)

	// UpdateBalanceInTx sets the balance of an account.
	UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal) error
}

// BankAccountRepositoryFacade combines all bank account repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}

// BankAccountRepositoryWithTx is used by the ledger, which needs row locks and transactions
type BankAccountRepositoryWithTx interface {
	BankAccountRepositoryFacade
	BankAccountTxSupport
	TransactionManager
}
