package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit atomically claims the rate limit slot for the
// caller. The key identifies the caller (a user ID, or a client IP for
// anonymous submissions). Returns false if a slot is already held. No
// Redis means no limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, callerKey, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:%s:%s", callerKey, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// GetRateLimitTTL reports how long the caller's slot is still held,
// so rejections can tell the caller when to retry.
func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, callerKey, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", callerKey, action)
	return rdb.TTL(ctx, key).Result()
}
