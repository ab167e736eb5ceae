package reservations

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// ReservationRepository интерфейс репозитория резервов
type ReservationRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Reservation, error)
	ListItems(ctx context.Context) ([]domain.LineItem, error)
}

// CatalogRepository справочники для расчета цен и секунд
type CatalogRepository interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
