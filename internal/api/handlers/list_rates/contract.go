package list_rates

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

type CatalogService interface {
	ListRates(ctx context.Context) ([]models.RateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
