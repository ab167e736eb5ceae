package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// Ключи справочников, добавляются к префиксу
const (
	keyScreens    = "screens"
	keyRates      = "rates"
	keyCategories = "categories"
	keyCities     = "cities"
)

// Catalog read-through кэш справочников в Redis.
// Ошибки Redis не ломают запрос: данные читаются из источника.
type Catalog struct {
	source CatalogSource
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    Logger
}

// NewCatalog создает кэш поверх источника справочников
func NewCatalog(source CatalogSource, rdb *redis.Client, prefix string, ttl time.Duration, log Logger) *Catalog {
	return &Catalog{source: source, rdb: rdb, prefix: prefix, ttl: ttl, log: log}
}

func (c *Catalog) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	return readThrough(ctx, c, keyScreens, c.source.ListScreens)
}

func (c *Catalog) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return readThrough(ctx, c, keyRates, c.source.ListRates)
}

func (c *Catalog) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	return readThrough(ctx, c, keyCategories, c.source.ListCategories)
}

func (c *Catalog) ListCities(ctx context.Context) ([]domain.City, error) {
	return readThrough(ctx, c, keyCities, c.source.ListCities)
}

// CreateCategory пишет в источник и сбрасывает закэшированный список
func (c *Catalog) CreateCategory(ctx context.Context, category domain.CategoryRecord) error {
	if err := c.source.CreateCategory(ctx, category); err != nil {
		return err
	}
	c.invalidate(ctx, keyCategories)
	return nil
}

// CreateCity пишет в источник и сбрасывает закэшированный список
func (c *Catalog) CreateCity(ctx context.Context, city domain.City) error {
	if err := c.source.CreateCity(ctx, city); err != nil {
		return err
	}
	c.invalidate(ctx, keyCities)
	return nil
}

func (c *Catalog) key(name string) string {
	return c.prefix + ":" + name
}

func (c *Catalog) invalidate(ctx context.Context, name string) {
	if err := c.rdb.Del(ctx, c.key(name)).Err(); err != nil {
		c.log.Warn("Catalog.invalidate: key=%s: %v", c.key(name), err)
	}
}

func readThrough[T any](ctx context.Context, c *Catalog, name string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	key := c.key(name)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		c.log.Warn("Catalog.readThrough: corrupted entry key=%s: %v", key, err)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("Catalog.readThrough: redis get key=%s: %v", key, err)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("Catalog.readThrough: redis set key=%s: %v", key, err)
		}
	}
	return items, nil
}
