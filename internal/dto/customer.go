package dto

import (
	"github.com/SscSPs/digital_banking/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateCustomerRequest defines the data used to overwrite a customer.
// The id always comes from the path.
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// SearchCustomersParams defines the query parameters of a customer search.
type SearchCustomersParams struct {
	Keyword string `form:"keyword"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
