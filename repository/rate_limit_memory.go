package repository

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"shipping-quote-service/domain"
)

const (
	// roughly every tenth call sweeps expired windows
	sweepProbability = 10
)

type window struct {
	requestCount  int
	windowResetAt time.Time
}

// MemoryRateLimit is a fixed-window counter per client id, held in process
// memory. Expired entries are evicted lazily by a probabilistic sweep, so
// memory stays bounded without a background goroutine.
type MemoryRateLimit struct {
	windows      map[string]window
	windowLength time.Duration
	lock         sync.Mutex
	now          func() time.Time
}

func NewMemoryRateLimit(windowLength time.Duration) *MemoryRateLimit {
	return &MemoryRateLimit{
		windows:      map[string]window{},
		windowLength: windowLength,
		now:          time.Now,
	}
}

func (r *MemoryRateLimit) Hit(ctx context.Context, clientId string, limit int) (*domain.RateLimitResult, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.now()

	if rand.Intn(sweepProbability) == 0 { // nolint:gosec
		r.sweep(now)
	}

	entry, ok := r.windows[clientId]
	if !ok || now.After(entry.windowResetAt) {
		r.windows[clientId] = window{
			requestCount:  1,
			windowResetAt: now.Add(r.windowLength),
		}
		return &domain.RateLimitResult{
			Allow:      true,
			Remaining:  limit - 1,
			RetryAfter: r.windowLength,
		}, nil
	}

	entry.requestCount++
	r.windows[clientId] = entry

	remaining := limit - entry.requestCount
	if remaining < 0 {
		remaining = 0
	}
	return &domain.RateLimitResult{
		Allow:      entry.requestCount <= limit,
		Remaining:  remaining,
		RetryAfter: entry.windowResetAt.Sub(now),
	}, nil
}

func (r *MemoryRateLimit) sweep(now time.Time) {
	for clientId, entry := range r.windows {
		if now.After(entry.windowResetAt) {
			delete(r.windows, clientId)
		}
	}
}
