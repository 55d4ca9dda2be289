package route

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds the single most recently computed route per user. A new
// calculation overwrites the previous slot; readers racing an overwrite may
// see either route, last writer wins.
type Cache interface {
	Get(ctx context.Context, userID string) (Route, bool, error)
	Put(ctx context.Context, userID string, r Route) error
}

// MemoryCache is the in-process implementation: a mutex-guarded map keyed
// by user id, entries live for the process lifetime.
type MemoryCache struct {
	mu     sync.RWMutex
	routes map[string]Route
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{routes: map[string]Route{}}
}

func (c *MemoryCache) Get(_ context.Context, userID string) (Route, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.routes[userID]
	return r, ok, nil
}

func (c *MemoryCache) Put(_ context.Context, userID string, r Route) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[userID] = r
	return nil
}

// RedisCache stores each user's last route as a JSON value. TTL of zero
// keeps entries forever.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(userID string) string {
	return "route:last:" + userID
}

func (c *RedisCache) Get(ctx context.Context, userID string) (Route, bool, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Route{}, false, nil
	}
	if err != nil {
		return Route{}, false, err
	}

	var r Route
	if err := json.Unmarshal(payload, &r); err != nil {
		return Route{}, false, err
	}
	return r, true, nil
}

func (c *RedisCache) Put(ctx context.Context, userID string, r Route) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(userID), payload, c.ttl).Err()
}
