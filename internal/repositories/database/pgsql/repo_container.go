package pgsql

import (
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. The account cache is
// provided separately by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, accountCache portsrepo.BankAccountCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		OperationRepo:   newPgxOperationRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		AccountCache:    accountCache,
	}
}
