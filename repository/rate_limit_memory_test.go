package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitFixedWindow(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	now := time.Now()
	store := NewMemoryRateLimit(60 * time.Second)
	store.now = func() time.Time {
		return now
	}

	for i := 0; i < 30; i++ {
		result, err := store.Hit(context.Background(), "10.0.0.1", 30)
		require.NoError(err)
		require.True(result.Allow, "request %d must be allowed", i+1)
	}

	result, err := store.Hit(context.Background(), "10.0.0.1", 30)
	require.NoError(err)
	require.False(result.Allow)
	require.EqualValues(0, result.Remaining)
	require.True(result.RetryAfter > 0)
}

func TestMemoryRateLimitWindowReset(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	now := time.Now()
	store := NewMemoryRateLimit(60 * time.Second)
	store.now = func() time.Time {
		return now
	}

	for i := 0; i < 31; i++ {
		_, err := store.Hit(context.Background(), "10.0.0.1", 30)
		require.NoError(err)
	}

	now = now.Add(61 * time.Second)

	result, err := store.Hit(context.Background(), "10.0.0.1", 30)
	require.NoError(err)
	require.True(result.Allow)
	require.EqualValues(29, result.Remaining)
}

func TestMemoryRateLimitIsolatesClients(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := NewMemoryRateLimit(60 * time.Second)

	for i := 0; i < 30; i++ {
		_, err := store.Hit(context.Background(), "10.0.0.1", 30)
		require.NoError(err)
	}

	result, err := store.Hit(context.Background(), "10.0.0.2", 30)
	require.NoError(err)
	require.True(result.Allow)
}

func TestMemoryRateLimitSweep(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	now := time.Now()
	store := NewMemoryRateLimit(60 * time.Second)
	store.now = func() time.Time {
		return now
	}

	for i := 0; i < 100; i++ {
		_, err := store.Hit(context.Background(), "client", 30)
		require.NoError(err)
	}
	require.Len(store.windows, 1)

	now = now.Add(61 * time.Second)

	// the sweep fires on roughly every tenth hit, force it by hitting enough
	for i := 0; i < 200; i++ {
		_, err := store.Hit(context.Background(), "other", 1000)
		require.NoError(err)
	}

	_, stale := store.windows["client"]
	require.False(stale)
}
