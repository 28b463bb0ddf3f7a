// Package ratelimit throttles sign-in and password reset attempts with Redis
// fixed-window counters and records per-account access token cutoffs.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRateLimited = errors.New("rate limited")
	ErrUnavailable = errors.New("rate limit backend unavailable")
)

// Limiter is the throttling contract the auth service depends on.
type Limiter interface {
	Check(ctx context.Context, key string) error
	Increment(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type Rule struct {
	Prefix      string
	MaxAttempts int
	Window      time.Duration
}

// RedisLimiter counts attempts per key. The window starts with the first hit.
type RedisLimiter struct {
	client redis.UniversalClient
	rule   Rule
}

func NewRedisLimiter(client redis.UniversalClient, rule Rule) *RedisLimiter {
	return &RedisLimiter{client: client, rule: rule}
}

// Check fails once the key has used up its attempts in the current window.
func (l *RedisLimiter) Check(ctx context.Context, key string) error {
	count, err := l.client.Get(ctx, l.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if count >= int64(l.rule.MaxAttempts) {
		return ErrRateLimited
	}
	return nil
}

// Increment records an attempt and returns ErrRateLimited when it exceeds the
// budget. The counter and its expiry are written in one MULTI, and EXPIRE NX
// keeps the window anchored at the first hit.
func (l *RedisLimiter) Increment(ctx context.Context, key string) error {
	k := l.key(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.rule.Window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if incr.Val() > int64(l.rule.MaxAttempts) {
		return ErrRateLimited
	}
	return nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (l *RedisLimiter) key(key string) string {
	return "authn:rl:" + l.rule.Prefix + ":" + key
}

// Noop never throttles. It is used when no Redis address is configured.
type Noop struct{}

func (Noop) Check(context.Context, string) error     { return nil }
func (Noop) Increment(context.Context, string) error { return nil }
func (Noop) Reset(context.Context, string) error     { return nil }
