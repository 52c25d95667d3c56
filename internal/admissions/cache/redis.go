package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"unistats/internal/admissions/models"
	"unistats/pkg/platform/sentinel"
)

// Redis stores snapshots as JSON strings with a TTL so every replica shares one copy.
type Redis struct {
	client redis.Cmdable
}

// NewRedis constructs a Redis-backed snapshot cache.
func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]*models.Record, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var records []*models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return records, nil
}

// Set uses SET with expiry so the write and TTL are atomic.
func (c *Redis) Set(ctx context.Context, key string, records []*models.Record, ttl time.Duration) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Redis) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
