package create_category

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

type CatalogService interface {
	AddCategory(ctx context.Context, name string) (*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
