package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chenyahui/gin-cache/persist"
	"github.com/jellydator/ttlcache/v2"
)

// MemoryStore is the in-process fallback backend for single-instance
// deployments without redis. No pattern deletion, so invalidation clears
// the whole cache.
type MemoryStore struct {
	cache *ttlcache.Cache
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	c := ttlcache.NewCache()
	c.SetTTL(defaultTTL)
	c.SkipTTLExtensionOnHit(true)

	return &MemoryStore{cache: c}
}

func (s *MemoryStore) Get(key string, value interface{}) error {
	payload, err := s.cache.Get(key)
	if err != nil {
		if err == ttlcache.ErrNotFound {
			return persist.ErrCacheMiss
		}

		return err
	}

	return json.Unmarshal(payload.([]byte), value)
}

func (s *MemoryStore) Set(key string, value interface{}, expire time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.cache.SetWithTTL(key, payload, expire)
}

func (s *MemoryStore) Delete(key string) error {
	err := s.cache.Remove(key)
	if err == ttlcache.ErrNotFound {
		return nil
	}

	return err
}

func (s *MemoryStore) DeletePattern(_ context.Context, _ string) error {
	return ErrPatternUnsupported
}

func (s *MemoryStore) Clear(_ context.Context) error {
	return s.cache.Purge()
}
