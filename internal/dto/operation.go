package dto

import (
	"time"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveOperationRequest defines a debit or credit posted against one account.
type SaveOperationRequest struct {
	Type        domain.OperationType `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description"`
}

// TransferRequest defines a transfer between two accounts.
type TransferRequest struct {
	AccountSource      string          `json:"accountSource" binding:"required"`
	AccountDestination string          `json:"accountDestination" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
}

// AccountHistoryParams defines the query parameters of a paginated history.
// Size is nil when the caller did not send one.
type AccountHistoryParams struct {
	Page int  `form:"page,default=0"`
	Size *int `form:"size"`
}

// AccountOperationResponse defines the data returned for an operation.
type AccountOperationResponse struct {
	ID            int64                `json:"id"`
	OperationDate time.Time            `json:"operationDate"`
	Amount        decimal.Decimal      `json:"amount"`
	Type          domain.OperationType `json:"type"`
	Description   string               `json:"description"`
}

// AccountHistoryResponse is one page of an account's operations.
type AccountHistoryResponse struct {
	AccountID             string                     `json:"accountId"`
	Balance               decimal.Decimal            `json:"balance"`
	CurrentPage           int                        `json:"currentPage"`
	TotalPage             int                        `json:"totalPage"`
	PageSize              int                        `json:"pageSize"`
	AccountOperationsDTOS []AccountOperationResponse `json:"accountOperationsDTOS"`
}

// TransferResponse returns both legs of a transfer.
type TransferResponse struct {
	Debit  AccountOperationResponse `json:"debit"`
	Credit AccountOperationResponse `json:"credit"`
}

// ToAccountOperationResponse converts a domain.AccountOperation to its DTO
func ToAccountOperationResponse(op *domain.AccountOperation) AccountOperationResponse {
	return AccountOperationResponse{
		ID:            op.ID,
		OperationDate: op.OperationDate,
		Amount:        op.Amount,
		Type:          op.Type,
		Description:   op.Description,
	}
}

// ToListAccountOperationResponse converts operations to DTOs
func ToListAccountOperationResponse(ops []domain.AccountOperation) []AccountOperationResponse {
	res := make([]AccountOperationResponse, len(ops))
	for i := range ops {
		res[i] = ToAccountOperationResponse(&ops[i])
	}
	return res
}
