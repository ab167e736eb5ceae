package list_screens

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

type CatalogService interface {
	ListScreens(ctx context.Context) ([]models.ScreenResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
