package token

import (
	"context"
	"time"

	redisclient "github.com/campusnest/backend/cmd/redis"
	"github.com/redis/go-redis/v9"
)

// RedisStore backs the token ledger with the shared redis client so that
// verify/reset calls can land on any instance.
type RedisStore struct{}

func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
