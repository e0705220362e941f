package cache

import (
	"context"
	"time"

	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisSessionCache struct {
	client redis.Cmdable
}

// NewRedisSessionCache returns a SessionCache stored in Redis.
func NewRedisSessionCache(client redis.Cmdable) service.SessionCache {
	return &redisSessionCache{client: client}
}

func (c *redisSessionCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (c *redisSessionCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (c *redisSessionCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}
