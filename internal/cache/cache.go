package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"katana_store/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	catalogKey = "katanas:all"
	catalogTTL = time.Minute
)

// CatalogCache is a read-through cache for the unfiltered katana listing.
// A nil *CatalogCache is valid and disables caching entirely.
type CatalogCache struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewCatalogCache(addr string, logger *logrus.Logger) *CatalogCache {
	if addr == "" {
		return nil
	}
	return &CatalogCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		log: logger,
	}
}

func (c *CatalogCache) GetCatalog(ctx context.Context) ([]domain.Katana, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, catalogKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Error reading catalog from cache: %v", err)
		}
		return nil, false
	}

	var katanas []domain.Katana
	if err := json.Unmarshal([]byte(payload), &katanas); err != nil {
		c.log.Warnf("Error unmarshalling cached catalog: %v", err)
		return nil, false
	}
	return katanas, true
}

func (c *CatalogCache) SetCatalog(ctx context.Context, katanas []domain.Katana) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(katanas)
	if err != nil {
		c.log.Warnf("Error marshalling catalog for cache: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, payload, catalogTTL).Err(); err != nil {
		c.log.Warnf("Error writing catalog to cache: %v", err)
	}
}

func (c *CatalogCache) InvalidateCatalog(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warnf("Error invalidating catalog cache: %v", err)
	}
}
