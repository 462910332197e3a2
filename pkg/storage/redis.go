package storage

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/modaboutique/storefront/pkg/global"
)

// RedisStore persists client state in Redis, one Redis key per storage
// key. Useful for kiosk deployments where several terminals share a
// cashier session.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects using REDIS_ADDRESS/REDIS_PASSWORD, same
// convention as the rest of our services. The prefix isolates one
// terminal's state from another's.
func NewRedisStore(prefix string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     global.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
			Password: global.GetEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
			Protocol: 2,
		}),
		prefix: prefix,
	}
}

func (s *RedisStore) key(key string) string {
	return fmt.Sprintf("storefront:%s:%s", s.prefix, key)
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	// Reads are best effort; a flaky Redis looks like a miss.
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(key string) error {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
