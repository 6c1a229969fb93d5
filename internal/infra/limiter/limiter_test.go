package limiter

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
)

func TestMemoryCooldown(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := NewMemory(2 * time.Second)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	if !l.Allow(ctx, "u1") {
		t.Fatal("first call must pass")
	}
	if l.Allow(ctx, "u1") {
		t.Fatal("second call inside the window must be blocked")
	}
	if !l.Allow(ctx, "u2") {
		t.Fatal("other keys are independent")
	}
	now = now.Add(2 * time.Second)
	if !l.Allow(ctx, "u1") {
		t.Fatal("call after the window must pass")
	}
}

func TestNewWithoutAddrUsesMemory(t *testing.T) {
	if _, ok := New("", "", 0, time.Second).(*Memory); !ok {
		t.Fatal("want *Memory when no redis addr is configured")
	}
}

// Integration-style: sólo corre si REDIS_ADDR está seteado.
func TestRedisCooldownIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: db})
	defer rdb.Close()

	ctx := context.Background()
	key := "test-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	l := NewRedis(rdb, time.Second)
	if !l.Allow(ctx, key) {
		t.Fatal("first call must pass")
	}
	if l.Allow(ctx, key) {
		t.Fatal("second call inside the window must be blocked")
	}
	time.Sleep(1100 * time.Millisecond)
	if !l.Allow(ctx, key) {
		t.Fatal("call after expiry must pass")
	}
}
