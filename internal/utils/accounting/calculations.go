package accounting

import (
	"fmt"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits stored for amounts and balances.
const AmountScale = 4

// maxAmount is the first value that no longer fits NUMERIC(19,4).
var maxAmount = decimal.New(1, 19-AmountScale)

// ValidateAmount checks that an operation amount is strictly positive and
// storable without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrValidation, amount.String())
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: amount allows at most %d decimal places, got %s", apperrors.ErrValidation, AmountScale, amount.String())
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: amount %s is too large", apperrors.ErrValidation, amount.String())
	}
	return nil
}

// ApplyOperation returns the balance after applying an operation of the given type.
// DEBIT subtracts the amount, CREDIT adds it. No floor is enforced: a debit may
// take the balance below zero regardless of the account's overdraft.
func ApplyOperation(balance decimal.Decimal, opType domain.OperationType, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	switch opType {
	case domain.Debit:
		return balance.Sub(amount), nil
	case domain.Credit:
		return balance.Add(amount), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown operation type '%s'", apperrors.ErrValidation, opType)
	}
}

// NetBalanceChange sums the signed effect of a set of operations.
func NetBalanceChange(ops []domain.AccountOperation) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, op := range ops {
		next, err := ApplyOperation(sum, op.Type, op.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("operation %d: %w", op.ID, err)
		}
		sum = next
	}
	return sum, nil
}
