package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList remembers, per account, the instant before which issued
// access tokens are no longer honoured.
type RevocationList interface {
	RevokeBefore(ctx context.Context, accountID string, at time.Time, ttl time.Duration) error
	RevokedBefore(ctx context.Context, accountID string) (time.Time, bool, error)
}

type RedisRevocationList struct {
	client redis.UniversalClient
}

func NewRedisRevocationList(client redis.UniversalClient) *RedisRevocationList {
	return &RedisRevocationList{client: client}
}

// RevokeBefore stores the cutoff for ttl, which should cover the access token lifetime.
func (r *RedisRevocationList) RevokeBefore(ctx context.Context, accountID string, at time.Time, ttl time.Duration) error {
	value := strconv.FormatInt(at.UnixMilli(), 10)
	if err := r.client.Set(ctx, revocationKey(accountID), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (r *RedisRevocationList) RevokedBefore(ctx context.Context, accountID string) (time.Time, bool, error) {
	millis, err := r.client.Get(ctx, revocationKey(accountID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return time.UnixMilli(millis).UTC(), true, nil
}

func revocationKey(accountID string) string {
	return "authn:revoked:" + accountID
}

type NoopRevocationList struct{}

func (NoopRevocationList) RevokeBefore(context.Context, string, time.Time, time.Duration) error {
	return nil
}

func (NoopRevocationList) RevokedBefore(context.Context, string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
