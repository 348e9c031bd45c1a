package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agricert/farmer-certification/internal/core/domain"
)

const statusTTL = time.Minute

// StatusCache is a short-TTL read cache for status projections backed by
// Redis. Key format: farmer:status:<user_id>
type StatusCache struct {
	client *redis.Client
}

// NewStatusCache creates a StatusCache wrapping the given Redis client.
func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

// Get returns the cached projection for userID; the second return value
// reports whether an entry was present.
func (c *StatusCache) Get(ctx context.Context, userID string) (*domain.StatusProjection, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("status cache get: %w", err)
	}

	var projection domain.StatusProjection
	if err := json.Unmarshal(raw, &projection); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, false, nil
	}
	return &projection, true, nil
}

// Set stores the projection (expires after statusTTL).
func (c *StatusCache) Set(ctx context.Context, projection *domain.StatusProjection) error {
	raw, err := json.Marshal(projection)
	if err != nil {
		return fmt.Errorf("status cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(projection.ID), raw, statusTTL).Err()
}

// Invalidate drops the cached projection for userID.
func (c *StatusCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *StatusCache) key(userID string) string {
	return "farmer:status:" + userID
}
