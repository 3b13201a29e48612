package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	"github.com/SscSPs/digital_banking/internal/middleware"
	goredis "github.com/redis/go-redis/v9"
)

const (
	bankAccountKeyPrefix    = "bank_account:"
	bankAccountGenKeyPrefix = "bank_account_gen:"

	// minGenerationTTL bounds how long an invalidation fence is kept when
	// views never expire or expire quickly.
	minGenerationTTL = time.Hour
)

// setIfGeneration writes KEYS[2] only when KEYS[1] still holds ARGV[1].
// A missing generation key reads as 0. ARGV[3] is the ttl in milliseconds, 0 for none.
var setIfGeneration = goredis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// BankAccountKey returns the cache key of an account view.
func BankAccountKey(accountID string) string {
	return bankAccountKeyPrefix + accountID
}

// BankAccountGenerationKey returns the key of an account's invalidation counter.
func BankAccountGenerationKey(accountID string) string {
	return bankAccountGenKeyPrefix + accountID
}

// RedisBankAccountCache caches bank account views in Redis.
type RedisBankAccountCache struct {
	client *goredis.Client
	views  *viewCache[domain.BankAccount]
	ttl    time.Duration
}

// NewRedisBankAccountCache creates a cache backed by client.
func NewRedisBankAccountCache(client *goredis.Client, ttl time.Duration) *RedisBankAccountCache {
	return &RedisBankAccountCache{client: client, views: newViewCache[domain.BankAccount](client), ttl: ttl}
}

var _ portsrepo.BankAccountCache = (*RedisBankAccountCache)(nil)

func (c *RedisBankAccountCache) Get(ctx context.Context, accountID string) (*domain.BankAccount, bool) {
	return c.views.get(ctx, BankAccountKey(accountID))
}

func (c *RedisBankAccountCache) Generation(ctx context.Context, accountID string) int64 {
	gen, err := c.client.Get(ctx, BankAccountGenerationKey(accountID)).Int64()
	if err == goredis.Nil {
		return 0
	}
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache generation read failed",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		return -1
	}
	return gen
}

func (c *RedisBankAccountCache) Set(ctx context.Context, account domain.BankAccount, generation int64) {
	if generation < 0 {
		return
	}
	keys := []string{BankAccountGenerationKey(account.ID), BankAccountKey(account.ID)}
	data, ok := c.views.encode(ctx, keys[1], &account)
	if !ok {
		return
	}
	stored, err := setIfGeneration.Run(ctx, c.client, keys, strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds()).Int()
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache write failed", slog.String("account_id", account.ID), slog.String("error", err.Error()))
		return
	}
	if stored == 0 {
		middleware.GetLoggerFromCtx(ctx).Debug("Cache fill dropped after invalidation", slog.String("account_id", account.ID))
	}
}

func (c *RedisBankAccountCache) Invalidate(ctx context.Context, accountIDs ...string) {
	if len(accountIDs) == 0 {
		return
	}
	genTTL := max(2*c.ttl, minGenerationTTL)
	keys := make([]string, len(accountIDs))
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, id := range accountIDs {
			keys[i] = BankAccountKey(id)
			pipe.Incr(ctx, BankAccountGenerationKey(id))
			pipe.Expire(ctx, BankAccountGenerationKey(id), genTTL)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
