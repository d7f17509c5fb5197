package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boipoka/storefront/internal/core/domain"
)

// Orders are kept long enough to absorb double-clicks and retry-after-timeout,
// not as an order history; the upstream owns that.
const replayTTL = 24 * time.Hour

// ReplayStore persists checkout outcomes by idempotency key so a duplicate
// submission returns the original order instead of creating a second one.
// Key format: checkout:<owner>:<idempotency_key>
type ReplayStore struct {
	client *redis.Client
}

// NewReplayStore creates a ReplayStore wrapping the given Redis client.
func NewReplayStore(client *redis.Client) *ReplayStore {
	return &ReplayStore{client: client}
}

// Find returns the order previously stored under this key, or (nil, nil) when
// the key has not been seen.
func (r *ReplayStore) Find(ctx context.Context, owner, key string) (*domain.Order, error) {
	data, err := r.client.Get(ctx, r.key(owner, key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("replay lookup: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("replay decode: %w", err)
	}
	return &order, nil
}

// Save records the order created for this key (expires after replayTTL).
func (r *ReplayStore) Save(ctx context.Context, owner, key string, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("replay encode: %w", err)
	}
	if err := r.client.Set(ctx, r.key(owner, key), data, replayTTL).Err(); err != nil {
		return fmt.Errorf("replay save: %w", err)
	}
	return nil
}

func (r *ReplayStore) key(owner, key string) string {
	return fmt.Sprintf("checkout:%s:%s", owner, key)
}
