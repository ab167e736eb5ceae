package catalog

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
	ListCategories(ctx context.Context) ([]domain.CategoryRecord, error)
	CreateCategory(ctx context.Context, category domain.CategoryRecord) error
	ListCities(ctx context.Context) ([]domain.City, error)
	CreateCity(ctx context.Context, city domain.City) error
}

// Locker интерфейс именованных блокировок
type Locker interface {
	Do(ctx context.Context, fn func(ctx context.Context) error, groups ...string) error
}

// IDGenerator генератор коротких идентификаторов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
