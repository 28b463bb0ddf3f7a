package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/ratelimit"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr, client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "signin", MaxAttempts: 3, Window: time.Minute})
	ctx := context.Background()

	require.NoError(t, limiter.Check(ctx, "alice@example.com"))
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Increment(ctx, "alice@example.com"))
	}
	assert.ErrorIs(t, limiter.Check(ctx, "alice@example.com"), ratelimit.ErrRateLimited)
	assert.ErrorIs(t, limiter.Increment(ctx, "alice@example.com"), ratelimit.ErrRateLimited)

	require.NoError(t, limiter.Check(ctx, "bob@example.com"))

	mr.FastForward(time.Minute)
	assert.NoError(t, limiter.Check(ctx, "alice@example.com"))
}

func TestRedisLimiter_WindowStartsOnFirstHit(t *testing.T) {
	mr, client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "reset", MaxAttempts: 2, Window: time.Minute})
	ctx := context.Background()

	require.NoError(t, limiter.Increment(ctx, "k"))
	mr.FastForward(40 * time.Second)
	require.NoError(t, limiter.Increment(ctx, "k"))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.LessOrEqual(t, mr.TTL(keys[0]), 20*time.Second)
}

func TestRedisLimiter_CounterWithoutExpiryRegainsWindow(t *testing.T) {
	mr, client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "reset", MaxAttempts: 5, Window: time.Minute})
	ctx := context.Background()

	require.NoError(t, mr.Set("authn:rl:reset:k", "1"))
	require.NoError(t, limiter.Increment(ctx, "k"))

	assert.Equal(t, time.Minute, mr.TTL("authn:rl:reset:k"))
	mr.FastForward(time.Minute)
	assert.False(t, mr.Exists("authn:rl:reset:k"))
}

func TestRedisLimiter_Reset(t *testing.T) {
	_, client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "signin", MaxAttempts: 1, Window: time.Minute})
	ctx := context.Background()

	require.NoError(t, limiter.Increment(ctx, "alice"))
	assert.ErrorIs(t, limiter.Check(ctx, "alice"), ratelimit.ErrRateLimited)

	require.NoError(t, limiter.Reset(ctx, "alice"))
	assert.NoError(t, limiter.Check(ctx, "alice"))
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr, client := newRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Rule{Prefix: "signin", MaxAttempts: 1, Window: time.Minute})
	mr.Close()

	assert.ErrorIs(t, limiter.Check(context.Background(), "alice"), ratelimit.ErrUnavailable)
	assert.ErrorIs(t, limiter.Increment(context.Background(), "alice"), ratelimit.ErrUnavailable)
}

func TestRedisRevocationList(t *testing.T) {
	mr, client := newRedis(t)
	list := ratelimit.NewRedisRevocationList(client)
	ctx := context.Background()

	_, ok, err := list.RevokedBefore(ctx, "account-1")
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.UnixMilli(1_700_000_000_000).UTC()
	require.NoError(t, list.RevokeBefore(ctx, "account-1", at, 15*time.Minute))

	cutoff, ok, err := list.RevokedBefore(ctx, "account-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, cutoff.Equal(at))

	mr.FastForward(16 * time.Minute)
	_, ok, err = list.RevokedBefore(ctx, "account-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
