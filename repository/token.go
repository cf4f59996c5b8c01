package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"shipping-quote-service/cache"
	"shipping-quote-service/domain"
)

const (
	tokenCacheKey = "carrier_bearer_token"

	// token is refreshed this long before the carrier-reported expiry
	tokenExpiryBuffer = 5 * time.Minute
)

type CarrierAuthenticator interface {
	Authenticate(ctx context.Context) (domain.CarrierToken, error)
}

// Token is the process-wide single-slot carrier token cache. The mutex keeps
// concurrent cache misses from issuing parallel authentication calls.
type Token struct {
	auth  CarrierAuthenticator
	cache *cache.Cache
	lock  sync.Mutex
}

func NewToken(auth CarrierAuthenticator) *Token {
	return &Token{
		auth:  auth,
		cache: cache.New(),
	}
}

func (r *Token) Token(ctx context.Context) (string, error) {
	data, ok := r.cache.Get(tokenCacheKey)
	if ok {
		return string(data), nil
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	data, ok = r.cache.Get(tokenCacheKey)
	if ok {
		return string(data), nil
	}

	token, err := r.auth.Authenticate(ctx)
	if err != nil {
		return "", errors.WithMessage(err, "authenticate")
	}

	lifeTime := time.Until(token.ExpiresAt.Add(-tokenExpiryBuffer))
	if lifeTime > 0 {
		r.cache.Set(tokenCacheKey, []byte(token.Token), lifeTime)
	}

	return token.Token, nil
}

// Invalidate drops the cached token, forcing re-authentication on next use.
func (r *Token) Invalidate() {
	r.cache.Delete(tokenCacheKey)
}
