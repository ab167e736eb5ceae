package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type countingSource struct {
	screens    []domain.Screen
	categories []domain.CategoryRecord
	calls      map[string]int
}

func newCountingSource() *countingSource {
	return &countingSource{
		screens:    []domain.Screen{{ID: "1", Cylinder: 1, Label: "A"}},
		categories: []domain.CategoryRecord{{ID: "aa11bb22", Name: "moda"}},
		calls:      make(map[string]int),
	}
}

func (s *countingSource) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	s.calls["screens"]++
	return s.screens, nil
}

func (s *countingSource) ListRates(ctx context.Context) ([]domain.Rate, error) {
	s.calls["rates"]++
	return []domain.Rate{}, nil
}

func (s *countingSource) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	s.calls["categories"]++
	return s.categories, nil
}

func (s *countingSource) CreateCategory(ctx context.Context, category domain.CategoryRecord) error {
	s.categories = append(s.categories, category)
	return nil
}

func (s *countingSource) ListCities(ctx context.Context) ([]domain.City, error) {
	s.calls["cities"]++
	return []domain.City{{Name: "Cali"}}, nil
}

func (s *countingSource) CreateCity(ctx context.Context, city domain.City) error {
	return nil
}

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *countingSource, *Catalog) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	source := newCountingSource()
	return mr, source, NewCatalog(source, rdb, "prisma:catalog", time.Minute, logger.NewNop())
}

func TestCatalog_ReadThrough(t *testing.T) {
	mr, source, cache := setupTestCache(t)
	ctx := context.Background()

	first, err := cache.ListScreens(ctx)
	require.NoError(t, err)
	second, err := cache.ListScreens(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls["screens"])
	assert.True(t, mr.Exists("prisma:catalog:screens"))
	assert.Equal(t, time.Minute, mr.TTL("prisma:catalog:screens"))
}

func TestCatalog_ExpiredEntryReloads(t *testing.T) {
	mr, source, cache := setupTestCache(t)
	ctx := context.Background()

	_, err := cache.ListScreens(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.ListScreens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls["screens"])
}

func TestCatalog_CreateCategoryInvalidates(t *testing.T) {
	_, source, cache := setupTestCache(t)
	ctx := context.Background()

	_, err := cache.ListCategories(ctx)
	require.NoError(t, err)

	require.NoError(t, cache.CreateCategory(ctx, domain.CategoryRecord{ID: "cc33dd44", Name: "salud"}))

	got, err := cache.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, source.calls["categories"])
}

func TestCatalog_RedisDownFallsBackToSource(t *testing.T) {
	mr, source, cache := setupTestCache(t)
	mr.Close()

	got, err := cache.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.City{{Name: "Cali"}}, got)
	assert.Equal(t, 1, source.calls["cities"])
}
