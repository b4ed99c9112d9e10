package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chenyahui/gin-cache/persist"
	"github.com/go-redis/redis/v8"
)

// RedisStore keeps cached responses in redis. Supports pattern-based
// invalidation through SCAN so a write only evicts its own namespaces.
type RedisStore struct {
	c *redis.Client
}

func NewRedisStore(c *redis.Client) *RedisStore {
	return &RedisStore{c: c}
}

func (s *RedisStore) Get(key string, value interface{}) error {
	payload, err := s.c.Get(context.TODO(), key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return persist.ErrCacheMiss
		}

		return err
	}

	return json.Unmarshal(payload, value)
}

func (s *RedisStore) Set(key string, value interface{}, expire time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.c.Set(context.TODO(), key, payload, expire).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.c.Del(context.TODO(), key).Err()
}

func (s *RedisStore) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64

	for {
		keys, next, err := s.c.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			if err := s.c.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.c.FlushDB(ctx).Err()
}
