package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles HTTP requests related to bank accounts and their operations.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
	ledgerService      portssvc.LedgerSvcFacade
	defaultPageSize    int
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade, ls portssvc.LedgerSvcFacade, defaultPageSize int) *bankAccountHandler {
	return &bankAccountHandler{
		bankAccountService: bs,
		ledgerService:      ls,
		defaultPageSize:    defaultPageSize,
	}
}

// registerBankAccountRoutes registers routes related to bank accounts.
func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade, ledgerService portssvc.LedgerSvcFacade, defaultPageSize int) {
	h := newBankAccountHandler(bankAccountService, ledgerService, defaultPageSize)
	admin := middleware.RequireAuthority(domain.RoleAdmin.Authority())

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:id", h.getBankAccount)
		accounts.GET("/:id/operations", h.accountHistory)
		accounts.POST("/:id/operations", h.saveOperation)
		accounts.GET("/:id/pageOperations", h.pageOperations)
		accounts.POST("/current", admin, h.createCurrentAccount)
		accounts.POST("/saving", admin, h.createSavingAccount)
		accounts.POST("/transfer", h.transfer)
	}
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	account, err := h.bankAccountService.GetBankAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.BankAccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// accountHistory godoc
// @Summary List every operation of an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {array} dto.AccountOperationResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/operations [get]
func (h *bankAccountHandler) accountHistory(c *gin.Context) {
	ops, err := h.ledgerService.AccountHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to load account history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountOperationResponse(ops))
}

// pageOperations godoc
// @Summary Page through the operations of an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param page query int false "Zero based page number" default(0)
// @Param size query int false "Page size" default(5)
// @Success 200 {object} dto.AccountHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/pageOperations [get]
func (h *bankAccountHandler) pageOperations(c *gin.Context) {
	var params dto.AccountHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, err)
		return
	}
	size := h.defaultPageSize
	if params.Size != nil {
		size = *params.Size
	}

	history, err := h.ledgerService.GetAccountHistory(c.Request.Context(), c.Param("id"), params.Page, size)
	if err != nil {
		respondWithError(c, err, "Failed to load account history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// saveOperation godoc
// @Summary Debit or credit an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param operation body dto.SaveOperationRequest true "Operation"
// @Success 200 {object} dto.AccountOperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/operations [post]
func (h *bankAccountHandler) saveOperation(c *gin.Context) {
	var req dto.SaveOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	op, err := h.ledgerService.SaveOperation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to save operation")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountOperationResponse(op))
}

// transfer godoc
// @Summary Transfer between two accounts
// @Description Debits the source and credits the destination atomically.
// @Tags accounts
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bank account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/transfer [post]
func (h *bankAccountHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	ops, err := h.ledgerService.Transfer(c.Request.Context(), req.AccountSource, req.AccountDestination, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err, "Failed to transfer")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transfer accepted",
		slog.String("from_account_id", req.AccountSource),
		slog.String("to_account_id", req.AccountDestination))
	c.JSON(http.StatusOK, dto.TransferResponse{
		Debit:  dto.ToAccountOperationResponse(&ops[0]),
		Credit: dto.ToAccountOperationResponse(&ops[1]),
	})
}

// createCurrentAccount godoc
// @Summary Open a current account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateCurrentAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/current [post]
func (h *bankAccountHandler) createCurrentAccount(c *gin.Context) {
	var req dto.CreateCurrentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	account, err := h.bankAccountService.SaveCurrentBankAccount(c.Request.Context(), req.InitialBalance, req.OverDraft, req.CustomerID)
	if err != nil {
		respondWithError(c, err, "Failed to open bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// createSavingAccount godoc
// @Summary Open a saving account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateSavingAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/saving [post]
func (h *bankAccountHandler) createSavingAccount(c *gin.Context) {
	var req dto.CreateSavingAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	account, err := h.bankAccountService.SaveSavingBankAccount(c.Request.Context(), req.InitialBalance, req.InterestRate, req.CustomerID)
	if err != nil {
		respondWithError(c, err, "Failed to open bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}
