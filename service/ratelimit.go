package service

import (
	"context"

	"github.com/pkg/errors"
	"shipping-quote-service/conf"
	"shipping-quote-service/domain"
)

type RateLimitStore interface {
	Hit(ctx context.Context, clientId string, limit int) (*domain.RateLimitResult, error)
}

type RateLimit struct {
	store RateLimitStore
	limit int
}

func NewRateLimit(store RateLimitStore, config conf.RateLimit) RateLimit {
	return RateLimit{
		store: store,
		limit: config.RequestsPerWindow,
	}
}

func (s RateLimit) Allow(ctx context.Context, clientId string) (*domain.RateLimitResult, error) {
	if s.limit <= 0 {
		return &domain.RateLimitResult{
			Allow:      true,
			Remaining:  -1,
			RetryAfter: -1,
		}, nil
	}

	result, err := s.store.Hit(ctx, clientId, s.limit)
	if err != nil {
		return nil, errors.WithMessage(err, "hit rate limit store")
	}

	return result, nil
}
