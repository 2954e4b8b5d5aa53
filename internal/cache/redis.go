package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps values in Redis. A nil client degrades every call to a miss.
type RedisStore struct {
	client *redis.Client
}

// DialRedis connects and pings. On failure the client is closed and the error returned.
func DialRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if s.client == nil {
		return nil, false
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if s.client == nil {
		return
	}
	s.client.Del(ctx, key)
}

func (s *RedisStore) Healthy(ctx context.Context) bool {
	if s.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}

func (s *RedisStore) Backend() string { return "redis" }

func (s *RedisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// ErrUnavailable is returned by writes when the backing store is gone
var ErrUnavailable = errors.New("cache unavailable")

// Open returns a Redis store when addr answers, otherwise an in-process store
func Open(ctx context.Context, addr, password string, db int, logger *zap.Logger) Store {
	if addr != "" {
		rs, err := DialRedis(ctx, addr, password, db)
		if err == nil {
			logger.Info("session store connected", zap.String("backend", "redis"), zap.String("addr", addr))
			return rs
		}
		logger.Warn("redis unreachable, using in-memory session store", zap.String("addr", addr), zap.Error(err))
	}
	return NewMemoryStore(defaultMemoryTTL)
}
