package update_prereservation

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// PreReservationRepository интерфейс репозитория пре-резервов
type PreReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PreReservation, error)
	Update(ctx context.Context, pre *domain.PreReservation) error
	ReplaceItems(ctx context.Context, id string, items []domain.LineItem) error
}

// SnapshotLoader загрузчик согласованного среза хранилища
type SnapshotLoader interface {
	Load(ctx context.Context) (*availability.Snapshot, error)
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
