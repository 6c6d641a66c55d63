package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs two read models: the coarse order-status customers poll,
// and the per-day confirmed-sales counters maintained by the consumer.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) statusKey(orderID int) string {
	return "order:status:" + strconv.Itoa(orderID)
}

func (c *RedisCache) GetStatus(ctx context.Context, orderID int) (string, error) {
	status, err := c.Client.Get(ctx, c.statusKey(orderID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return status, err
}

func (c *RedisCache) SetStatus(ctx context.Context, orderID int, status string) error {
	return c.Client.Set(ctx, c.statusKey(orderID), status, c.TTL).Err()
}

func (c *RedisCache) DropStatus(ctx context.Context, orderID int) error {
	return c.Client.Del(ctx, c.statusKey(orderID)).Err()
}

const salesCounterTTL = 7 * 24 * time.Hour

// RecordConfirmedOrder bumps the day's order count and revenue for the
// restaurant. Counters expire after a week; postgres stays authoritative.
func (c *RedisCache) RecordConfirmedOrder(ctx context.Context, restaurantID int, day string, total float64) error {
	key := "sales:" + day + ":" + strconv.Itoa(restaurantID)
	if err := c.Client.HIncrBy(ctx, key, "orders_count", 1).Err(); err != nil {
		return err
	}
	if err := c.Client.HIncrByFloat(ctx, key, "total_sales", total).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, salesCounterTTL).Err()
}
