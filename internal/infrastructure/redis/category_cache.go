package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/shop-api/internal/application/catalog"
	"github.com/jhoicas/shop-api/internal/application/dto"
	"github.com/jhoicas/shop-api/pkg/config"
	"github.com/jhoicas/shop-api/pkg/logger"
)

var _ catalog.CategoryCache = (*CategoryCache)(nil)

const (
	categoryKeyPrefix = "shop:category:"
	scanBatch         = 100
)

// CategoryCache guarda la vista traducida de cada categoría (dto.CategoryResponse) por slug.
// Cualquier escritura en el árbol invalida todas las entradas: el padre y los hijos de un nodo
// forman parte de su vista.
type CategoryCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

func NewCategoryCache(rdb goredis.Cmdable, ttl time.Duration) *CategoryCache {
	return &CategoryCache{rdb: rdb, ttl: ttl}
}

func categoryKey(slug string) string {
	return categoryKeyPrefix + slug
}

// Get devuelve (nil, nil) en un miss.
func (c *CategoryCache) Get(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	data, err := c.rdb.Get(ctx, categoryKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", slug, err)
	}
	var out dto.CategoryResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode category %s: %w", slug, err)
	}
	return &out, nil
}

func (c *CategoryCache) Set(ctx context.Context, category *dto.CategoryResponse) error {
	if category == nil {
		return nil
	}
	data, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("encode category %s: %w", category.Slug, err)
	}
	if err := c.rdb.Set(ctx, categoryKey(category.Slug), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", category.Slug, err)
	}
	return nil
}

// InvalidateAll borra las claves de categorías con SCAN (no bloquea el servidor como KEYS).
func (c *CategoryCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, categoryKeyPrefix+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(batch) > 0 {
		if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	return nil
}

// NewCategoryCacheFromConfig conecta a Redis si cfg lo habilita. Sin REDIS_URL devuelve
// (nil, closer no-op, nil): el caso de uso trabaja sin caché.
func NewCategoryCacheFromConfig(ctx context.Context, cfg config.CacheConfig, log *logger.Logger) (catalog.CategoryCache, func() error, error) {
	if !cfg.Enabled() {
		return nil, func() error { return nil }, nil
	}
	rdb, err := NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		return nil, nil, err
	}
	return NewCategoryCache(rdb, cfg.TTL), rdb.Close, nil
}
