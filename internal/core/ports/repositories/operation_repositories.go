package repositories

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// OperationReader defines read operations for the ledger
type OperationReader interface {
	// ListOperationsByAccountID returns every operation of an account ordered by
	// operation date then id, ascending.
	ListOperationsByAccountID(ctx context.Context, accountID string) ([]domain.AccountOperation, error)

	// ListOperationsPage returns one page of an account's operations in the same
	// order together with the total number of operations of the account.
	ListOperationsPage(ctx context.Context, accountID string, limit, offset int) ([]domain.AccountOperation, int64, error)
}

// OperationWriter defines the append-only write side of the ledger
type OperationWriter interface {
	// SaveOperationInTx appends an operation and returns its store-assigned id.
	SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.AccountOperation) (int64, error)
}

// OperationRepositoryFacade combines all operation repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
