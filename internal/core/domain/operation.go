package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType indicates whether an operation debits or credits an account.
type OperationType string

const (
	Debit  OperationType = "DEBIT"
	Credit OperationType = "CREDIT"
)

// Valid reports whether t is DEBIT or CREDIT.
func (t OperationType) Valid() bool {
	return t == Debit || t == Credit
}

// AccountOperation is an immutable ledger entry against one bank account.
type AccountOperation struct {
	ID            int64           `json:"id"`
	OperationDate time.Time       `json:"operationDate"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	Type          OperationType   `json:"type"`
	Description   string          `json:"description"`
	BankAccountID string          `json:"bankAccountId"`
}
