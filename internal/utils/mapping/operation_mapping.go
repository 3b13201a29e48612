package mapping

import (
	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/models"
)

// ToModelOperation converts a domain AccountOperation to a model AccountOperation
func ToModelOperation(d domain.AccountOperation) models.AccountOperation {
	return models.AccountOperation{
		ID:            d.ID,
		OperationDate: d.OperationDate,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Description:   d.Description,
		BankAccountID: d.BankAccountID,
	}
}

// ToDomainOperation converts a model AccountOperation to a domain AccountOperation
func ToDomainOperation(m models.AccountOperation) domain.AccountOperation {
	return domain.AccountOperation{
		ID:            m.ID,
		OperationDate: m.OperationDate,
		Amount:        m.Amount,
		Type:          domain.OperationType(m.Type),
		Description:   m.Description,
		BankAccountID: m.BankAccountID,
	}
}

// ToDomainOperationSlice converts a slice of model operations to domain operations
func ToDomainOperationSlice(ms []models.AccountOperation) []domain.AccountOperation {
	ds := make([]domain.AccountOperation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOperation(m)
	}
	return ds
}
