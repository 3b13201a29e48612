package repositories

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
)

// BankAccountCache is a read-through cache of bank account views.
// Implementations must treat every failure as a miss.
//
// Fills are fenced by a per-account generation: Invalidate bumps it, and Set
// only stores a view read after Generation returned the current value. A fill
// that raced a commit is therefore dropped instead of cached.
type BankAccountCache interface {
	Get(ctx context.Context, accountID string) (*domain.BankAccount, bool)
	// Generation returns the account's invalidation counter, or a negative
	// value when it cannot be read.
	Generation(ctx context.Context, accountID string) int64
	// Set stores account if its generation still equals generation.
	Set(ctx context.Context, account domain.BankAccount, generation int64)
	Invalidate(ctx context.Context, accountIDs ...string)
}

// NoopBankAccountCache is used when no cache is configured.
type NoopBankAccountCache struct{}

var _ BankAccountCache = NoopBankAccountCache{}

func (NoopBankAccountCache) Get(context.Context, string) (*domain.BankAccount, bool) { return nil, false }
func (NoopBankAccountCache) Generation(context.Context, string) int64 { return -1 }
func (NoopBankAccountCache) Set(context.Context, domain.BankAccount, int64) {}
func (NoopBankAccountCache) Invalidate(context.Context, ...string) {}
