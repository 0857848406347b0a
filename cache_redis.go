package ghin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed Cache for multi-instance deployments.
// Entries are JSON-marshaled; expiry is delegated to Redis. Errors on the
// cache path degrade to a miss rather than failing the request.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisCacheConfig configures a RedisCache.
type RedisCacheConfig struct {
	// Addr is the Redis address, host:port.
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis database.
	DB int
	// Prefix namespaces this client's keys. Defaults to "ghin:".
	Prefix string
}

// NewRedisCache creates a Redis-backed cache and verifies connectivity.
func NewRedisCache(ctx context.Context, cfg RedisCacheConfig) (*RedisCache, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "ghin:"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, newConfigError("redis cache unreachable", err)
	}

	return &RedisCache{client: client, prefix: cfg.Prefix}, nil
}

// NewRedisCacheFromClient wraps an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "ghin:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

// Get retrieves a cached entry. A Redis error or decode failure is a miss.
func (c *RedisCache) Get(key string) (*CacheEntry, bool) {
	data, err := c.client.Get(context.Background(), c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	return &entry, true
}

// Set stores an entry with the given TTL. Failures are dropped; the cache
// is best effort.
func (c *RedisCache) Set(key string, entry *CacheEntry, ttl time.Duration) {
	entry.ExpiresAt = time.Now().Add(ttl)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	c.client.Set(context.Background(), c.prefix+key, data, ttl)
}

// Delete removes an entry.
func (c *RedisCache) Delete(key string) {
	c.client.Del(context.Background(), c.prefix+key)
}

// Clear removes every entry under this cache's prefix.
func (c *RedisCache) Clear() {
	ctx := context.Background()
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			c.client.Del(ctx, keys...)
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// Close releases the underlying Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
