package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/SscSPs/digital_banking/internal/models"
	"github.com/SscSPs/digital_banking/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for both account variants.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryWithTx {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBankAccountRepository implements portsrepo.BankAccountRepositoryWithTx
var _ portsrepo.BankAccountRepositoryWithTx = (*PgxBankAccountRepository)(nil)

const bankAccountSelect = `
	SELECT ba.id, ba.account_type, ba.balance, ba.created_at, ba.status,
	       ba.customer_id, c.name, c.email, ba.over_draft, ba.interest_rate
	FROM bank_accounts ba
	JOIN customers c ON c.id = ba.customer_id`

func scanBankAccount(row rowScanner) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.ID,
		&m.AccountType,
		&m.Balance,
		&m.CreatedAt,
		&m.Status,
		&m.CustomerID,
		&m.CustomerName,
		&m.CustomerEmail,
		&m.OverDraft,
		&m.InterestRate,
	)
	return m, err
}

func collectBankAccounts(rows pgx.Rows) ([]models.BankAccount, error) {
	defer rows.Close()
	modelAccounts := []models.BankAccount{}
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return modelAccounts, nil
}

// SaveBankAccount inserts a new account. Only the column of the account's own variant is set.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (id, account_type, balance, created_at, status, customer_id, over_draft, interest_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.AccountType,
		m.Balance,
		m.CreatedAt,
		m.Status,
		m.CustomerID,
		m.OverDraft,
		m.InterestRate,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.ErrCustomerNotFound
		}
		return wrapQueryError(err, "failed to save bank account %s", m.ID)
	}
	return nil
}

// FindBankAccountByID retrieves an account and its owner.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	m, err := scanBankAccount(r.Pool.QueryRow(ctx, bankAccountSelect+` WHERE ba.id = $1;`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find bank account by ID %s: %w", accountID, err)
	}
	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, bankAccountSelect+` ORDER BY ba.created_at, ba.id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	ms, err := collectBankAccounts(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBankAccountSlice(ms), nil
}

func (r *PgxBankAccountRepository) ListBankAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, bankAccountSelect+` WHERE ba.customer_id = $1 ORDER BY ba.created_at, ba.id;`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts of customer %d: %w", customerID, err)
	}
	ms, err := collectBankAccounts(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBankAccountSlice(ms), nil
}

// FindBankAccountsByIDsForUpdate locks the requested rows. Rows are locked in id
// order so two transfers over the same pair of accounts cannot deadlock.
func (r *PgxBankAccountRepository) FindBankAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error) {
	ids := append([]string(nil), accountIDs...)
	sort.Strings(ids)

	rows, err := tx.Query(ctx, bankAccountSelect+` WHERE ba.id = ANY($1) ORDER BY ba.id FOR UPDATE OF ba;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock bank accounts: %w", err)
	}
	ms, err := collectBankAccounts(rows)
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]domain.BankAccount, len(ms))
	for _, m := range ms {
		accounts[m.ID] = mapping.ToDomainBankAccount(m)
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("account %s: %w", id, apperrors.ErrAccountNotFound)
		}
	}
	return accounts, nil
}

func (r *PgxBankAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE bank_accounts SET balance = $1 WHERE id = $2;`, balance, accountID)
	if err != nil {
		return wrapQueryError(err, "failed to update balance of account %s", accountID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
