package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const flashTTL = time.Minute

// FlashStore keeps one-shot page messages that must survive a redirect.
// Key format: flash:<id>
type FlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client, ttl: flashTTL}
}

// Push appends a message for the browser identified by id.
func (f *FlashStore) Push(ctx context.Context, id, message string) error {
	key := f.key(id)
	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, f.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	return nil
}

// Pop returns and clears every pending message for id.
func (f *FlashStore) Pop(ctx context.Context, id string) ([]string, error) {
	key := f.key(id)
	pipe := f.client.TxPipeline()
	rng := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("flash pop: %w", err)
	}
	return rng.Val(), nil
}

func (f *FlashStore) key(id string) string {
	return "flash:" + id
}
