package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 30 * time.Second

// UnreadCache caches per-seller unread notification counts in Redis so the
// badge-count endpoint does not hit Mongo on every poll.
// Key format: unread:<seller_id>
type UnreadCache struct {
	client *redis.Client
}

// NewUnreadCache creates an UnreadCache wrapping the given Redis client.
func NewUnreadCache(client *redis.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

// Get returns the cached count and whether the key was present.
func (c *UnreadCache) Get(ctx context.Context, sellerID string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(sellerID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unread cache get: %w", err)
	}
	return n, true, nil
}

// Set stores the count (expires after unreadTTL).
func (c *UnreadCache) Set(ctx context.Context, sellerID string, count int64) error {
	return c.client.Set(ctx, c.key(sellerID), count, unreadTTL).Err()
}

// Invalidate drops the cached count after a notification insert or mark-read.
func (c *UnreadCache) Invalidate(ctx context.Context, sellerID string) error {
	return c.client.Del(ctx, c.key(sellerID)).Err()
}

func (c *UnreadCache) key(sellerID string) string {
	return "unread:" + sellerID
}
