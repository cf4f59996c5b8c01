package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"shipping-quote-service/domain"
)

// RedisRateLimit keeps the fixed-window counters in redis, so limits hold
// across parallel service instances.
type RedisRateLimit struct {
	cli          redis.UniversalClient
	windowLength time.Duration
}

func NewRedisRateLimit(cli redis.UniversalClient, windowLength time.Duration) RedisRateLimit {
	return RedisRateLimit{
		cli:          cli,
		windowLength: windowLength,
	}
}

func (r RedisRateLimit) Hit(ctx context.Context, clientId string, limit int) (*domain.RateLimitResult, error) {
	key := r.key(clientId)

	value, err := r.cli.Incr(ctx, key).Result()
	if err != nil {
		return nil, errors.WithMessage(err, "incr")
	}
	if value == 1 {
		err := r.cli.ExpireNX(ctx, key, r.windowLength).Err()
		if err != nil {
			return nil, errors.WithMessage(err, "expire nx")
		}
	}

	retryAfter := r.windowLength
	ttl, err := r.cli.PTTL(ctx, key).Result()
	if err == nil && ttl > 0 {
		retryAfter = ttl
	}

	remaining := limit - int(value)
	if remaining < 0 {
		remaining = 0
	}
	return &domain.RateLimitResult{
		Allow:      value <= int64(limit),
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}, nil
}

func (r RedisRateLimit) key(clientId string) string {
	return fmt.Sprintf("rate_limit:%s", clientId)
}
