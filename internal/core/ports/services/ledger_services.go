package services

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerPostingSvc defines the balance-mutating operations. Each one records its
// operations and the new balances atomically.
type LedgerPostingSvc interface {
	Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.AccountOperation, error)
	Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.AccountOperation, error)
	// Transfer debits the source and credits the destination in one transaction.
	// It returns the debit leg followed by the credit leg.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) ([]domain.AccountOperation, error)
	// SaveOperation dispatches to Debit or Credit on req.Type.
	SaveOperation(ctx context.Context, accountID string, req dto.SaveOperationRequest) (*domain.AccountOperation, error)
}

// LedgerHistorySvc defines the read side of the ledger
type LedgerHistorySvc interface {
	AccountHistory(ctx context.Context, accountID string) ([]domain.AccountOperation, error)
	GetAccountHistory(ctx context.Context, accountID string, page, size int) (*dto.AccountHistoryResponse, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerPostingSvc
	LedgerHistorySvc
}
