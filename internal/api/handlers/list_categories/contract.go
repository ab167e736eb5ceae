package list_categories

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
