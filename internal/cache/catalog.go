package cache

import (
	"context"
	"time"

	"github.com/rackline/rackline-go/internal/model"
)

// Catalog key layout. Every catalog key shares the "catalog:" prefix so a
// single DeleteByPrefix invalidates the whole read path after a write.
const (
	catalogPrefix      = "catalog:"
	keyCatalogFeatured = catalogPrefix + "featured"
	keyCatalogSearch   = catalogPrefix + "search:"
	keyCatalogCategory = catalogPrefix + "category:"
)

// prefixDeleter is implemented by both cache backends.
type prefixDeleter interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// CatalogCache caches equipment read-path results. Writes to the catalog must
// call Invalidate so stale listings never outlive a price or stock change.
type CatalogCache struct {
	cache Cacher
	lists *TypedCache[[]model.ServerEquipment]
}

// NewCatalogCache creates a catalog cache over the given backend.
func NewCatalogCache(cache Cacher, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{
		cache: cache,
		lists: NewTypedCache[[]model.ServerEquipment](cache, ttl),
	}
}

// Featured returns the featured listing, computing it on a miss.
func (c *CatalogCache) Featured(ctx context.Context, fn func() []model.ServerEquipment) []model.ServerEquipment {
	return c.getOrCompute(ctx, keyCatalogFeatured, fn)
}

// Search returns cached search results for a query, computing them on a miss.
func (c *CatalogCache) Search(ctx context.Context, query string, fn func() []model.ServerEquipment) []model.ServerEquipment {
	return c.getOrCompute(ctx, keyCatalogSearch+query, fn)
}

// Category returns the cached listing for a category slug.
func (c *CatalogCache) Category(ctx context.Context, slug string, fn func() []model.ServerEquipment) []model.ServerEquipment {
	return c.getOrCompute(ctx, keyCatalogCategory+slug, fn)
}

func (c *CatalogCache) getOrCompute(ctx context.Context, key string, fn func() []model.ServerEquipment) []model.ServerEquipment {
	result, err := c.lists.GetOrSet(ctx, key, func() (*[]model.ServerEquipment, error) {
		items := fn()
		return &items, nil
	})
	if err != nil || result == nil {
		return fn()
	}
	return *result
}

// Invalidate drops every cached catalog entry.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if pd, ok := c.cache.(prefixDeleter); ok {
		_ = pd.DeleteByPrefix(ctx, catalogPrefix)
		return
	}
	_ = c.cache.Clear(ctx)
}
