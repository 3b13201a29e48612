package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountOperation is a row of the append-only account_operations table.
type AccountOperation struct {
	ID            int64           `db:"id"`
	OperationDate time.Time       `db:"operation_date"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	BankAccountID string          `db:"bank_account_id"`
}
