package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MockCustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchCustomers(ctx context.Context, pattern string) ([]domain.Customer, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- MockBankAccountRepository ---

type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBankAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.BankAccount, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.BankAccount, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal) error {
	args := m.Called(ctx, tx, accountID, balance)
	return args.Error(0)
}

var _ portsrepo.BankAccountRepositoryWithTx = (*MockBankAccountRepository)(nil)

// --- MockOperationRepository ---

type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) ListOperationsByAccountID(ctx context.Context, accountID string) ([]domain.AccountOperation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountOperation), args.Error(1)
}

func (m *MockOperationRepository) ListOperationsPage(ctx context.Context, accountID string, limit, offset int) ([]domain.AccountOperation, int64, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AccountOperation), args.Get(1).(int64), args.Error(2)
}

func (m *MockOperationRepository) SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.AccountOperation) (int64, error) {
	args := m.Called(ctx, tx, op)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.OperationRepositoryFacade = (*MockOperationRepository)(nil)

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- MockAccountCache ---

type MockAccountCache struct {
	mock.Mock
}

func (m *MockAccountCache) Get(ctx context.Context, accountID string) (*domain.BankAccount, bool) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Bool(1)
}

func (m *MockAccountCache) Generation(ctx context.Context, accountID string) int64 {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64)
}

func (m *MockAccountCache) Set(ctx context.Context, account domain.BankAccount, generation int64) {
	m.Called(ctx, account, generation)
}

func (m *MockAccountCache) Invalidate(ctx context.Context, accountIDs ...string) {
	m.Called(ctx, accountIDs)
}

var _ portsrepo.BankAccountCache = (*MockAccountCache)(nil)

// --- memoryAccountCache ---

// memoryAccountCache is a map-backed cache with the same generation fencing as
// the Redis implementation.
type memoryAccountCache struct {
	mu          sync.Mutex
	views       map[string]domain.BankAccount
	generations map[string]int64
}

func newMemoryAccountCache() *memoryAccountCache {
	return &memoryAccountCache{views: map[string]domain.BankAccount{}, generations: map[string]int64{}}
}

func (c *memoryAccountCache) Get(_ context.Context, accountID string) (*domain.BankAccount, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.views[accountID]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (c *memoryAccountCache) Generation(_ context.Context, accountID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[accountID]
}

func (c *memoryAccountCache) Set(_ context.Context, account domain.BankAccount, generation int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[account.ID] == generation {
		c.views[account.ID] = account
	}
}

func (c *memoryAccountCache) Invalidate(_ context.Context, accountIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range accountIDs {
		c.generations[id]++
		delete(c.views, id)
	}
}

var _ portsrepo.BankAccountCache = (*memoryAccountCache)(nil)
