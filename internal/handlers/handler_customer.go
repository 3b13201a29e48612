package handlers

import (
	"net/http"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService    portssvc.CustomerSvcFacade
	bankAccountService portssvc.BankAccountReaderSvc
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade, bs portssvc.BankAccountReaderSvc) *customerHandler {
	return &customerHandler{
		customerService:    cs,
		bankAccountService: bs,
	}
}

// registerCustomerRoutes registers routes related to customers. Mutations need ROLE_ADMIN.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, bankAccountService portssvc.BankAccountReaderSvc) {
	h := newCustomerHandler(customerService, bankAccountService)
	admin := middleware.RequireAuthority(domain.RoleAdmin.Authority())

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.GET("/search", h.searchCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.GET("/:id/accounts", h.listCustomerAccounts)
		customers.POST("", admin, h.saveCustomer)
		customers.PATCH("/:id", admin, h.updateCustomer)
		customers.DELETE("/:id", admin, h.deleteCustomer)
	}
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// searchCustomers godoc
// @Summary Search customers by name
// @Description Returns customers whose name contains the keyword.
// @Tags customers
// @Produce json
// @Param keyword query string false "Name fragment"
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/search [get]
func (h *customerHandler) searchCustomers(c *gin.Context) {
	var params dto.SearchCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, err)
		return
	}

	customers, err := h.customerService.SearchCustomers(c.Request.Context(), "%"+params.Keyword+"%")
	if err != nil {
		respondWithError(c, err, "Failed to search customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customerID, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomerAccounts godoc
// @Summary List the bank accounts of a customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/accounts [get]
func (h *customerHandler) listCustomerAccounts(c *gin.Context) {
	customerID, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	accounts, err := h.bankAccountService.ListCustomerAccounts(c.Request.Context(), customerID)
	if err != nil {
		respondWithError(c, err, "Failed to list customer accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// saveCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) saveCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	customer, err := h.customerService.SaveCustomer(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to save customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description The ID in the path wins over any ID in the body.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [patch]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	customerID, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Customer still owns bank accounts"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	customerID, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		respondWithError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}
