package services

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/dto"
)

// CustomerReaderSvc defines read operations on customers
type CustomerReaderSvc interface {
	// GetCustomerByID returns apperrors.ErrCustomerNotFound when the customer is absent.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	// SearchCustomers matches names against a LIKE pattern. The pattern is passed
	// through unchanged; callers add their own wildcards.
	SearchCustomers(ctx context.Context, pattern string) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations on customers
type CustomerWriterSvc interface {
	SaveCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerSvcFacade combines all customer service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
