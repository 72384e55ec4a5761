package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	feedKey = "feed:posts"
	feedTTL = 30 * time.Second
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// FeedCache keeps the serialized all-posts response in Redis for a short
// window. The TTL bounds staleness across instances; creating a post
// invalidates the local entry immediately.
type FeedCache struct {
	rdb *redis.Client
}

func NewFeedCache(rdb *redis.Client) *FeedCache {
	return &FeedCache{rdb: rdb}
}

// Get returns the cached feed payload, or nil on a miss.
func (c *FeedCache) Get(ctx context.Context) ([]byte, error) {
	b, err := c.rdb.Get(ctx, feedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (c *FeedCache) Set(ctx context.Context, payload []byte) error {
	return c.rdb.Set(ctx, feedKey, payload, feedTTL).Err()
}

func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, feedKey).Err()
}
