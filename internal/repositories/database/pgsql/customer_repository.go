package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/SscSPs/digital_banking/internal/models"
	"github.com/SscSPs/digital_banking/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `id, name, email`

func scanCustomer(row rowScanner) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(&m.ID, &m.Name, &m.Email)
	return m, err
}

func (r *PgxCustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelCustomers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		modelCustomers = append(modelCustomers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %d: %w", customerID, err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id;`)
}

func (r *PgxCustomerRepository) SearchCustomers(ctx context.Context, pattern string) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, `SELECT `+customerColumns+` FROM customers WHERE name LIKE $1 ORDER BY id;`, pattern)
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	query := `INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id;`
	if err := r.Pool.QueryRow(ctx, query, m.Name, m.Email).Scan(&m.ID); err != nil {
		return nil, wrapQueryError(err, "failed to save customer")
	}
	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	query := `UPDATE customers SET name = $1, email = $2 WHERE id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Email, m.ID)
	if err != nil {
		return nil, wrapQueryError(err, "failed to update customer %d", m.ID)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrCustomerNotFound
	}
	updated := mapping.ToDomainCustomer(m)
	return &updated, nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, customerID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: customer %d still owns bank accounts", apperrors.ErrValidation, customerID)
		}
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCustomerNotFound
	}
	return nil
}
