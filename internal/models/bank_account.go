package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of the single-table bank_accounts hierarchy joined with
// its owning customer.
type BankAccount struct {
	ID            string              `db:"id"`
	AccountType   string              `db:"account_type"` // discriminator: CA or SA
	Balance       decimal.Decimal     `db:"balance"`
	CreatedAt     time.Time           `db:"created_at"`
	Status        string              `db:"status"`
	CustomerID    int64               `db:"customer_id"`
	CustomerName  string              `db:"customer_name"`
	CustomerEmail string              `db:"customer_email"`
	OverDraft     decimal.NullDecimal `db:"over_draft"`    // CA only
	InterestRate  decimal.NullDecimal `db:"interest_rate"` // SA only
}
