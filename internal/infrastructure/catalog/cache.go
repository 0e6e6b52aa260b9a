package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ourstore/storefront-api/internal/api/metrics"
	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// Cache is a read-through Redis layer over a CatalogClient. Listings and
// single products are cached; search results are always fetched fresh.
// A cache failure degrades to a direct upstream call, never to an error.
// Key format: catalog:products | catalog:product:<id>
type Cache struct {
	next   ports.CatalogClient
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCache(next ports.CatalogClient, client *redis.Client, ttl time.Duration, log zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{next: next, client: client, ttl: ttl, log: log}
}

func (c *Cache) Products(ctx context.Context) (*domain.ProductPage, error) {
	var page domain.ProductPage
	if c.lookup(ctx, "catalog:products", &page) {
		return &page, nil
	}

	fresh, err := c.next.Products(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, "catalog:products", fresh)
	return fresh, nil
}

func (c *Cache) Product(ctx context.Context, id string) (*domain.Product, error) {
	key := "catalog:product:" + id

	var product domain.Product
	if c.lookup(ctx, key, &product) {
		return &product, nil
	}

	fresh, err := c.next.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh)
	return fresh, nil
}

// Search is a passthrough: every query hits the upstream.
func (c *Cache) Search(ctx context.Context, query string) (*domain.ProductPage, error) {
	return c.next.Search(ctx, query)
}

// lookup reports whether key was found and decoded into out.
func (c *Cache) lookup(ctx context.Context, key string, out any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt")
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
