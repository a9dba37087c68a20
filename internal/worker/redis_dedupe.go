package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupeKeyPrefix = "processed:"

// redisDeduper records processed provider message ids in Redis with a
// retention TTL, shared across bot instances.
type redisDeduper struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedisDeduper(client *redis.Client, retention time.Duration) Deduper {
	return &redisDeduper{client: client, retention: retention}
}

func (d *redisDeduper) Seen(ctx context.Context, id string) (bool, error) {
	n, err := d.client.Exists(ctx, dedupeKeyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe lookup: %w", err)
	}
	return n > 0, nil
}

func (d *redisDeduper) MarkProcessed(ctx context.Context, id string) error {
	if err := d.client.Set(ctx, dedupeKeyPrefix+id, 1, d.retention).Err(); err != nil {
		return fmt.Errorf("dedupe mark: %w", err)
	}
	return nil
}
