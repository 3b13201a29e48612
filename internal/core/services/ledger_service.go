package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/utils/accounting"
	"github.com/SscSPs/digital_banking/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	accountRepo   portsrepo.BankAccountRepositoryWithTx
	operationRepo portsrepo.OperationRepositoryFacade
	cache         portsrepo.BankAccountCache
	now           func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerCache sets the cache invalidated after every committed posting
func WithLedgerCache(cache portsrepo.BankAccountCache) LedgerServiceOption {
	return func(s *ledgerService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithLedgerClock overrides the clock used to date operations
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the ledger engine.
func NewLedgerService(accountRepo portsrepo.BankAccountRepositoryWithTx, operationRepo portsrepo.OperationRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:   accountRepo,
		operationRepo: operationRepo,
		cache:         portsrepo.NoopBankAccountCache{},
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// posting is one balance movement requested of the ledger.
type posting struct {
	accountID   string
	opType      domain.OperationType
	amount      decimal.Decimal
	description string
}

// post records all postings and the resulting balances in a single database
// transaction. Either every operation and balance is committed or none is.
func (s *ledgerService) post(ctx context.Context, postings ...posting) ([]domain.AccountOperation, error) {
	accountIDs := make([]string, 0, len(postings))
	seen := make(map[string]bool, len(postings))
	for _, p := range postings {
		if err := accounting.ValidateAmount(p.amount); err != nil {
			return nil, err
		}
		if !p.opType.Valid() {
			return nil, fmt.Errorf("%w: unknown operation type '%s'", apperrors.ErrValidation, p.opType)
		}
		if !seen[p.accountID] {
			seen[p.accountID] = true
			accountIDs = append(accountIDs, p.accountID)
		}
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin ledger transaction")
		return nil, err
	}
	// Rollback after a successful commit is a no-op.
	defer s.accountRepo.Rollback(ctx, tx)

	locked, err := s.accountRepo.FindBankAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	balances := make(map[string]decimal.Decimal, len(locked))
	for id, acc := range locked {
		balances[id] = acc.Balance
	}

	now := s.now().UTC()
	ops := make([]domain.AccountOperation, 0, len(postings))
	for _, p := range postings {
		newBalance, err := accounting.ApplyOperation(balances[p.accountID], p.opType, p.amount)
		if err != nil {
			return nil, err
		}
		op := domain.AccountOperation{
			OperationDate: now,
			Amount:        p.amount,
			Type:          p.opType,
			Description:   p.description,
			BankAccountID: p.accountID,
		}
		id, err := s.operationRepo.SaveOperationInTx(ctx, tx, op)
		if err != nil {
			s.LogError(ctx, err, "Failed to record operation", slog.String("account_id", p.accountID))
			return nil, fmt.Errorf("failed to record %s operation: %w", p.opType, err)
		}
		op.ID = id
		balances[p.accountID] = newBalance
		ops = append(ops, op)
	}

	for _, id := range accountIDs {
		if err := s.accountRepo.UpdateBalanceInTx(ctx, tx, id, balances[id]); err != nil {
			s.LogError(ctx, err, "Failed to update balance", slog.String("account_id", id))
			return nil, fmt.Errorf("failed to update balance of account %s: %w", id, err)
		}
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit ledger transaction")
		return nil, err
	}

	s.cache.Invalidate(ctx, accountIDs...)
	return ops, nil
}

func (s *ledgerService) Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.AccountOperation, error) {
	ops, err := s.post(ctx, posting{accountID: accountID, opType: domain.Debit, amount: amount, description: description})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account debited", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return &ops[0], nil
}

func (s *ledgerService) Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.AccountOperation, error) {
	ops, err := s.post(ctx, posting{accountID: accountID, opType: domain.Credit, amount: amount, description: description})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account credited", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return &ops[0], nil
}

// Transfer debits the source and credits the destination atomically.
func (s *ledgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) ([]domain.AccountOperation, error) {
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	debitDesc := "Transfer to " + toAccountID
	creditDesc := "Transfer from " + fromAccountID
	if description != "" {
		debitDesc += ": " + description
		creditDesc += ": " + description
	}

	ops, err := s.post(ctx,
		posting{accountID: fromAccountID, opType: domain.Debit, amount: amount, description: debitDesc},
		posting{accountID: toAccountID, opType: domain.Credit, amount: amount, description: creditDesc},
	)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transfer completed",
		slog.String("from_account_id", fromAccountID),
		slog.String("to_account_id", toAccountID),
		slog.String("amount", amount.String()))
	return ops, nil
}

func (s *ledgerService) SaveOperation(ctx context.Context, accountID string, req dto.SaveOperationRequest) (*domain.AccountOperation, error) {
	switch req.Type {
	case domain.Debit:
		return s.Debit(ctx, accountID, req.Amount, req.Description)
	case domain.Credit:
		return s.Credit(ctx, accountID, req.Amount, req.Description)
	default:
		return nil, fmt.Errorf("%w: unknown operation type '%s'", apperrors.ErrValidation, req.Type)
	}
}

func (s *ledgerService) AccountHistory(ctx context.Context, accountID string) ([]domain.AccountOperation, error) {
	if _, err := s.accountRepo.FindBankAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to load history of %s: %w", accountID, err)
	}
	ops, err := s.operationRepo.ListOperationsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operations", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load history of %s: %w", accountID, err)
	}
	return ops, nil
}

func (s *ledgerService) GetAccountHistory(ctx context.Context, accountID string, page, size int) (*dto.AccountHistoryResponse, error) {
	p, err := pagination.NewPage(page, size)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of %s: %w", accountID, err)
	}

	ops, total, err := s.operationRepo.ListOperationsPage(ctx, accountID, p.Limit(), p.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list operations page", slog.String("account_id", accountID), slog.Int("page", page))
		return nil, fmt.Errorf("failed to load history of %s: %w", accountID, err)
	}

	return &dto.AccountHistoryResponse{
		AccountID:             account.ID,
		Balance:               account.Balance,
		CurrentPage:           p.Number,
		TotalPage:             pagination.TotalPages(total, p.Size),
		PageSize:              p.Size,
		AccountOperationsDTOS: dto.ToListAccountOperationResponse(ops),
	}, nil
}
