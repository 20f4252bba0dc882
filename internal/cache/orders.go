package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront-checkout-demo/internal/dto"
)

var ErrCacheMiss = errors.New("order history not cached")

// OrderHistoryCache is the best-effort local order list, newest first. The
// document store stays authoritative; a lost cache entry only costs a reload.
type OrderHistoryCache interface {
	Get(ctx context.Context, userID string) ([]dto.Order, error)
	Set(ctx context.Context, userID string, orders []dto.Order) error
	Prepend(ctx context.Context, userID string, order dto.Order) error
}

func NewRedisOrderHistoryCache(client *redis.Client) *RedisOrderHistoryCache {
	return &RedisOrderHistoryCache{
		client: client,
		ttl:    30 * time.Minute,
	}
}

type RedisOrderHistoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisOrderHistoryCache) Get(ctx context.Context, userID string) ([]dto.Order, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var orders []dto.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("unmarshal order history failed: %w", err)
	}

	return orders, nil
}

func (r *RedisOrderHistoryCache) Set(ctx context.Context, userID string, orders []dto.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal order history failed: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisOrderHistoryCache) Prepend(ctx context.Context, userID string, order dto.Order) error {
	existing, err := r.Get(ctx, userID)
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		// a corrupt entry is replaced rather than kept
		existing = nil
	}

	return r.Set(ctx, userID, append([]dto.Order{order}, existing...))
}

func cacheKey(userID string) string {
	return fmt.Sprintf("orders:%s", userID)
}
