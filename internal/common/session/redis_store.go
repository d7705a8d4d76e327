package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portal:storage:"

// RedisStore menyimpan setiap namespace sebagai satu hash Redis. TTL
// diperbarui setiap kali ada penulisan.
type RedisStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisStore(client *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(ns string) string {
	return redisKeyPrefix + ns
}

func (r *RedisStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, redisKey(ns), key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis hget %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, ns, key, value string) error {
	k := redisKey(ns)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, k, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, ns, key string) error {
	if err := r.client.HDel(ctx, redisKey(ns), key).Err(); err != nil {
		return fmt.Errorf("redis hdel %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, ns string) error {
	if err := r.client.Del(ctx, redisKey(ns)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
