package create_city

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

type CatalogService interface {
	AddCity(ctx context.Context, raw string) (*models.AddCityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
