package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int64, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxAttempts, window), mr
}

func TestLoginLimiter_AllowsWithinBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("fourth attempt: %v", err)
	}
	if ok {
		t.Fatalf("fourth attempt should be rejected")
	}
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "a@x.com"); !ok {
		t.Fatalf("first attempt for a@x.com should be allowed")
	}
	if ok, _ := limiter.Allow(ctx, "b@x.com"); !ok {
		t.Fatalf("b@x.com must not share a@x.com's budget")
	}
}

func TestLoginLimiter_WindowResets(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "a@x.com")
	if ok, _ := limiter.Allow(ctx, "a@x.com"); ok {
		t.Fatalf("second attempt should be rejected")
	}

	mr.FastForward(2 * time.Minute)

	ok, err := limiter.Allow(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("attempt after window: %v", err)
	}
	if !ok {
		t.Fatalf("budget should reset after the window lapses")
	}
}

func TestLoginLimiter_KeyIsCaseInsensitive(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "A@X.com")
	if ok, _ := limiter.Allow(ctx, "a@x.com"); ok {
		t.Fatalf("case variants must share one budget")
	}
}
