package limiter

import (
	"context"
	"log"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Limiter: cooldown por clave (usuario). Allow=false mientras dure la ventana.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// New usa Redis si addr está seteado y responde al ping; si no, memoria.
func New(addr, password string, db int, window time.Duration) Limiter {
	if addr == "" {
		return NewMemory(window)
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[limiter] redis %s no responde (%v), uso memoria", addr, err)
		_ = rdb.Close()
		return NewMemory(window)
	}
	log.Printf("[limiter] redis %s", addr)
	return NewRedis(rdb, window)
}

type Memory struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func NewMemory(window time.Duration) *Memory {
	return &Memory{next: map[string]time.Time{}, win: window, now: time.Now}
}

func (l *Memory) Allow(_ context.Context, key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[key]; ok && now.Before(until) {
		return false
	}
	l.next[key] = now.Add(l.win)
	return true
}

type Redis struct {
	rdb *redis.Client
	win time.Duration
}

func NewRedis(rdb *redis.Client, window time.Duration) *Redis {
	return &Redis{rdb: rdb, win: window}
}

// Allow: SET NX con expiración. Si Redis falla dejamos pasar (fail-open).
func (l *Redis) Allow(ctx context.Context, key string) bool {
	ok, err := l.rdb.SetNX(ctx, "bowl:cooldown:"+key, 1, l.win).Result()
	if err != nil {
		log.Printf("[limiter] redis: %v", err)
		return true
	}
	return ok
}
