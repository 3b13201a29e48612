package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bankAccountService struct {
	BaseService
	accountRepo  portsrepo.BankAccountRepositoryFacade
	customerRepo portsrepo.CustomerReader
	cache        portsrepo.BankAccountCache
	now          func() time.Time
	newID        func() string
}

// BankAccountServiceOption is a functional option for configuring the bank account service
type BankAccountServiceOption func(*bankAccountService)

// WithAccountCache adds a read-through cache for GetBankAccount
func WithAccountCache(cache portsrepo.BankAccountCache) BankAccountServiceOption {
	return func(s *bankAccountService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithAccountClock overrides the clock used for createdAt
func WithAccountClock(now func() time.Time) BankAccountServiceOption {
	return func(s *bankAccountService) {
		s.now = now
	}
}

// WithAccountIDGenerator overrides the account id generator
func WithAccountIDGenerator(newID func() string) BankAccountServiceOption {
	return func(s *bankAccountService) {
		s.newID = newID
	}
}

// NewBankAccountService creates a new bank account service with the provided options
func NewBankAccountService(accountRepo portsrepo.BankAccountRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...BankAccountServiceOption) portssvc.BankAccountSvcFacade {
	svc := &bankAccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		cache:        portsrepo.NoopBankAccountCache{},
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *bankAccountService) SaveCurrentBankAccount(ctx context.Context, initialBalance, overDraft decimal.Decimal, customerID int64) (*domain.BankAccount, error) {
	return s.open(ctx, customerID, func(acc *domain.BankAccount) {
		acc.Kind = domain.CurrentAccountKind
		acc.Balance = initialBalance
		acc.OverDraft = overDraft
	})
}

func (s *bankAccountService) SaveSavingBankAccount(ctx context.Context, initialBalance, interestRate decimal.Decimal, customerID int64) (*domain.BankAccount, error) {
	return s.open(ctx, customerID, func(acc *domain.BankAccount) {
		acc.Kind = domain.SavingAccountKind
		acc.Balance = initialBalance
		acc.InterestRate = interestRate
	})
}

// open persists a new account of the variant set by fill.
func (s *bankAccountService) open(ctx context.Context, customerID int64, fill func(*domain.BankAccount)) (*domain.BankAccount, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Owner not found for new bank account", slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to open bank account: %w", err)
	}

	account := domain.BankAccount{
		ID:        s.newID(),
		CreatedAt: s.now().UTC(),
		Status:    domain.StatusCreated,
		Customer:  *customer,
	}
	fill(&account)

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("account_id", account.ID))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	s.LogInfo(ctx, "Bank account opened",
		slog.String("account_id", account.ID),
		slog.String("type", string(account.Kind)),
		slog.Int64("customer_id", customerID))
	return &account, nil
}

func (s *bankAccountService) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	if cached, ok := s.cache.Get(ctx, accountID); ok {
		s.LogDebug(ctx, "Bank account served from cache", slog.String("account_id", accountID))
		return cached, nil
	}

	// Read the fence first: an Invalidate landing during the query drops the fill.
	generation := s.cache.Generation(ctx, accountID)
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank account %s: %w", accountID, err)
	}
	s.cache.Set(ctx, *account, generation)
	return account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := s.accountRepo.ListBankAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return s.knownVariants(ctx, accounts), nil
}

func (s *bankAccountService) ListCustomerAccounts(ctx context.Context, customerID int64) ([]domain.BankAccount, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("failed to list accounts of customer %d: %w", customerID, err)
	}
	accounts, err := s.accountRepo.ListBankAccountsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer bank accounts", slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to list accounts of customer %d: %w", customerID, err)
	}
	return s.knownVariants(ctx, accounts), nil
}

// knownVariants drops accounts with an unrecognised discriminator.
func (s *bankAccountService) knownVariants(ctx context.Context, accounts []domain.BankAccount) []domain.BankAccount {
	known := make([]domain.BankAccount, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.Kind.Valid() {
			s.LogWarn(ctx, "Skipping bank account of unknown type",
				slog.String("account_id", acc.ID),
				slog.String("type", string(acc.Kind)))
			continue
		}
		known = append(known, acc)
	}
	return known
}
