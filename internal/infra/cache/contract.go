package cache

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// CatalogSource хранилище справочников, которое кэшируется
type CatalogSource interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
	ListCategories(ctx context.Context) ([]domain.CategoryRecord, error)
	CreateCategory(ctx context.Context, category domain.CategoryRecord) error
	ListCities(ctx context.Context) ([]domain.City, error)
	CreateCity(ctx context.Context, city domain.City) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
