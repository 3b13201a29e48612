package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	accountRepo  portsrepo.BankAccountReader
	accountCache portsrepo.BankAccountCache
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithOwnedAccountCache evicts the cached views of a customer's accounts after
// the customer is changed, since each view embeds its owner.
func WithOwnedAccountCache(accounts portsrepo.BankAccountReader, cache portsrepo.BankAccountCache) CustomerServiceOption {
	return func(s *customerService) {
		if accounts != nil && cache != nil {
			s.accountRepo = accounts
			s.accountCache = cache
		}
	}
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, options ...CustomerServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{customerRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// ownedAccountIDs lists the ids of the customer's accounts, or nil when no
// cache is configured or the lookup fails.
func (s *customerService) ownedAccountIDs(ctx context.Context, customerID int64) []string {
	if s.accountCache == nil {
		return nil
	}
	accounts, err := s.accountRepo.ListBankAccountsByCustomer(ctx, customerID)
	if err != nil {
		s.LogWarn(ctx, "Failed to list accounts for cache eviction",
			slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		return nil
	}
	ids := make([]string, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.ID
	}
	return ids
}

func (s *customerService) evictOwnedAccounts(ctx context.Context, accountIDs []string) {
	if len(accountIDs) > 0 {
		s.accountCache.Invalidate(ctx, accountIDs...)
	}
}

// validateCustomer normalises and checks name and email.
func validateCustomer(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return "", "", fmt.Errorf("%w: invalid customer email %q", apperrors.ErrValidation, email)
	}
	return name, email, nil
}

func (s *customerService) SaveCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	name, email, err := validateCustomer(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, domain.Customer{Name: name, Email: email})
	if err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", name))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer saved", slog.Int64("customer_id", saved.ID))
	return saved, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	name, email, err := validateCustomer(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	updated, err := s.customerRepo.UpdateCustomer(ctx, domain.Customer{ID: customerID, Name: name, Email: email})
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	s.evictOwnedAccounts(ctx, s.ownedAccountIDs(ctx, customerID))
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	owned := s.ownedAccountIDs(ctx, customerID)
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.Int64("customer_id", customerID))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	s.evictOwnedAccounts(ctx, owned)
	s.LogInfo(ctx, "Customer deleted", slog.Int64("customer_id", customerID))
	return nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, pattern string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.SearchCustomers(ctx, pattern)
	if err != nil {
		s.LogError(ctx, err, "Failed to search customers", slog.String("pattern", pattern))
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}
