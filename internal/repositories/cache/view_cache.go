package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/digital_banking/internal/middleware"
	goredis "github.com/redis/go-redis/v9"
)

// viewCache reads JSON views of one type from Redis.
type viewCache[T any] struct {
	client *goredis.Client
}

func newViewCache[T any](client *goredis.Client) *viewCache[T] {
	return &viewCache[T]{client: client}
}

// get returns (nil, false) on any miss or decoding error.
func (c *viewCache[T]) get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// encode marshals value, logging and reporting false on failure.
func (c *viewCache[T]) encode(ctx context.Context, key string, value *T) ([]byte, bool) {
	data, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return data, true
}
