package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"shipping-quote-service/domain"
	"shipping-quote-service/httperrors"
	"shipping-quote-service/request"
)

type RateLimiter interface {
	Allow(ctx context.Context, clientId string) (*domain.RateLimitResult, error)
}

func RateLimit(limiter RateLimiter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			clientId := ctx.ClientId()

			result, err := limiter.Allow(ctx.Context(), clientId)
			if err != nil {
				return errors.WithMessage(err, "rate limit: allow")
			}
			if !result.Allow {
				return httperrors.New(
					http.StatusTooManyRequests,
					fmt.Sprintf("rate limit has been reached, try after %dms", result.RetryAfter.Milliseconds()),
					errors.Errorf("rate limit: rate limit has been reached for client '%s'", clientId),
				)
			}

			return next.Handle(ctx)
		})
	}
}
