package store

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/model"
)

// CachedStore serves FetchByID from an expiring cache in front of another Store.
// Writes go through to the wrapped store and evict the cached entry.
type CachedStore struct {
	Store
	cache *gocache.Cache
}

// NewCachedStore wraps inner with a cache whose entries expire after ttl
func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FetchByID returns a cached copy when available
func (c *CachedStore) FetchByID(ctx context.Context, id int64) (*model.Juice, error) {
	if v, found := c.cache.Get(cacheKey(id)); found {
		j := v.(model.Juice)
		return &j, nil
	}

	j, err := c.Store.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Set(cacheKey(id), *j, gocache.DefaultExpiration)
	return j, nil
}

// Persist writes through and refreshes the cached entry
func (c *CachedStore) Persist(ctx context.Context, juice model.Juice) (model.Juice, error) {
	if !juice.IsNew() {
		c.cache.Delete(cacheKey(juice.ID))
	}

	saved, err := c.Store.Persist(ctx, juice)
	if err != nil {
		return saved, err
	}
	c.cache.Set(cacheKey(saved.ID), saved, gocache.DefaultExpiration)
	return saved, nil
}

// Delete removes the entry and evicts it from the cache
func (c *CachedStore) Delete(ctx context.Context, id int64) error {
	c.cache.Delete(cacheKey(id))
	return c.Store.Delete(ctx, id)
}

// Close flushes the cache and closes the wrapped store
func (c *CachedStore) Close() error {
	log.Debug().Int("entries", c.cache.ItemCount()).Msg("flushing juice cache")
	c.cache.Flush()
	return c.Store.Close()
}
