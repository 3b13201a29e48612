package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/SscSPs/digital_banking/internal/models"
	"github.com/SscSPs/digital_banking/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOperationRepository struct {
	BaseRepository
}

func newPgxOperationRepository(pool *pgxpool.Pool) portsrepo.OperationRepositoryFacade {
	return &PgxOperationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOperationRepository implements portsrepo.OperationRepositoryFacade
var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

const operationSelect = `
	SELECT id, operation_date, amount, type, description, bank_account_id
	FROM account_operations
	WHERE bank_account_id = $1
	ORDER BY operation_date ASC, id ASC`

func (r *PgxOperationRepository) queryOperations(ctx context.Context, query string, args ...any) ([]domain.AccountOperation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account operations: %w", err)
	}
	defer rows.Close()

	modelOps := []models.AccountOperation{}
	for rows.Next() {
		var m models.AccountOperation
		if err := rows.Scan(&m.ID, &m.OperationDate, &m.Amount, &m.Type, &m.Description, &m.BankAccountID); err != nil {
			return nil, fmt.Errorf("failed to scan account operation row: %w", err)
		}
		modelOps = append(modelOps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account operation rows: %w", err)
	}
	return mapping.ToDomainOperationSlice(modelOps), nil
}

func (r *PgxOperationRepository) ListOperationsByAccountID(ctx context.Context, accountID string) ([]domain.AccountOperation, error) {
	return r.queryOperations(ctx, operationSelect+`;`, accountID)
}

func (r *PgxOperationRepository) ListOperationsPage(ctx context.Context, accountID string, limit, offset int) ([]domain.AccountOperation, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM account_operations WHERE bank_account_id = $1;`, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count account operations of %s: %w", accountID, err)
	}
	if total == 0 {
		return []domain.AccountOperation{}, 0, nil
	}
	ops, err := r.queryOperations(ctx, operationSelect+` LIMIT $2 OFFSET $3;`, accountID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return ops, total, nil
}

func (r *PgxOperationRepository) SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.AccountOperation) (int64, error) {
	m := mapping.ToModelOperation(op)
	query := `
		INSERT INTO account_operations (operation_date, amount, type, description, bank_account_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query, m.OperationDate, m.Amount, m.Type, m.Description, m.BankAccountID).Scan(&id); err != nil {
		return 0, wrapQueryError(err, "failed to insert %s operation for account %s", m.Type, m.BankAccountID)
	}
	return id, nil
}
