package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultMemoryTTL = 12 * time.Hour

// Store is a byte-value key/value store with per-key expiry
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string)
	Healthy(ctx context.Context) bool
	Backend() string
}

// MemoryStore keeps values in process memory. Contents are lost on restart.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore creates a store whose entries default to ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: gocache.New(ttl, 10*time.Minute)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	s.c.Set(key, append([]byte(nil), data...), ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) {
	s.c.Delete(key)
}

func (s *MemoryStore) Healthy(context.Context) bool { return true }

func (s *MemoryStore) Backend() string { return "memory" }

// Len is the number of unexpired entries
func (s *MemoryStore) Len() int {
	return s.c.ItemCount()
}
