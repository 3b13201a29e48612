package repositories

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer. Returns apperrors.ErrCustomerNotFound when absent.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers returns all customers ordered by id.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomers returns the customers whose name matches the LIKE pattern.
	SearchCustomers(ctx context.Context, pattern string) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer inserts a customer and returns it with its store-assigned id.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// UpdateCustomer overwrites name and email. Returns apperrors.ErrCustomerNotFound when absent.
	UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// DeleteCustomer hard-deletes a customer. Returns apperrors.ErrCustomerNotFound when absent
	// and apperrors.ErrValidation when the customer still owns accounts.
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
