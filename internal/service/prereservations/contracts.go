package prereservations

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// PreReservationRepository интерфейс репозитория пре-резервов
type PreReservationRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.PreReservation, error)
	GetByID(ctx context.Context, id string) (*domain.PreReservation, error)
	ListItemsByPreReservation(ctx context.Context, id string) ([]domain.LineItem, error)
	Update(ctx context.Context, pre *domain.PreReservation) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository справочники для детализации пре-резерва
type CatalogRepository interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// SnapshotLoader загрузчик согласованного среза хранилища
type SnapshotLoader interface {
	Load(ctx context.Context) (*availability.Snapshot, error)
}

// Locker интерфейс именованных блокировок
type Locker interface {
	Do(ctx context.Context, fn func(ctx context.Context) error, groups ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
