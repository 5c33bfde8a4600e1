package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const subscriberCountKeyPrefix = "channel:subscribers:"

// decrFloorScript decrements a counter but never below zero.
var decrFloorScript = redis.NewScript(`
local v = tonumber(redis.call("GET", KEYS[1]) or "0")
if v <= 0 then
  redis.call("SET", KEYS[1], 0)
  return 0
end
return redis.call("DECR", KEYS[1])
`)

// RedisSubscriberCounter implements SubscriberCounter with Redis counters.
type RedisSubscriberCounter struct {
	client *redis.Client
}

// NewRedisSubscriberCounter creates a new Redis-backed subscriber counter.
func NewRedisSubscriberCounter(client *redis.Client) *RedisSubscriberCounter {
	return &RedisSubscriberCounter{client: client}
}

func (c *RedisSubscriberCounter) Incr(ctx context.Context, channel uuid.UUID) (int64, error) {
	n, err := c.client.Incr(ctx, c.buildKey(channel)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	return n, nil
}

func (c *RedisSubscriberCounter) Decr(ctx context.Context, channel uuid.UUID) (int64, error) {
	n, err := decrFloorScript.Run(ctx, c.client, []string{c.buildKey(channel)}).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis decr: %w", err)
	}
	return n, nil
}

func (c *RedisSubscriberCounter) Get(ctx context.Context, channel uuid.UUID) (int64, error) {
	n, err := c.client.Get(ctx, c.buildKey(channel)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get: %w", err)
	}
	return n, nil
}

func (c *RedisSubscriberCounter) buildKey(channel uuid.UUID) string {
	return subscriberCountKeyPrefix + channel.String()
}

var _ SubscriberCounter = (*RedisSubscriberCounter)(nil)
