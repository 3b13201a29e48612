package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the discriminant of the bank account variant.
type AccountKind string

const (
	CurrentAccountKind AccountKind = "CA"
	SavingAccountKind  AccountKind = "SA"
)

// Valid reports whether k is a known variant.
func (k AccountKind) Valid() bool {
	return k == CurrentAccountKind || k == SavingAccountKind
}

// AccountStatus is stored with every account but no operation transitions it.
type AccountStatus string

const (
	StatusCreated   AccountStatus = "CREATED"
	StatusActivated AccountStatus = "ACTIVATED"
	StatusSuspended AccountStatus = "SUSPENDED"
)

// BankAccount is a tagged variant: OverDraft is meaningful only for current
// accounts and InterestRate only for saving accounts.
type BankAccount struct {
	ID           string          `json:"id"`
	Kind         AccountKind     `json:"type"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"createdAt"`
	Status       AccountStatus   `json:"status"`
	Customer     Customer        `json:"customer"`
	OverDraft    decimal.Decimal `json:"overDraft"`
	InterestRate decimal.Decimal `json:"interestRate"`
}

// IsCurrent reports whether the account is a current account.
func (a BankAccount) IsCurrent() bool { return a.Kind == CurrentAccountKind }

// IsSaving reports whether the account is a saving account.
func (a BankAccount) IsSaving() bool { return a.Kind == SavingAccountKind }
