package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginLimiter throttles credential checks with a Redis fixed-window counter.
// Key format: login_attempts:<key>
//
// The first attempt in a window sets the expiry; once the counter exceeds the
// limit, Allow reports false until the window lapses.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter. Non-positive maxAttempts or window
// fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records one attempt for key and reports whether it is within the
// window's budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.key(key)

	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}

func (l *LoginLimiter) key(key string) string {
	return "login_attempts:" + strings.ToLower(key)
}
