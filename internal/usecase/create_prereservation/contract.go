package create_prereservation

import (
	"context"
	"time"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// PreReservationRepository интерфейс репозитория пре-резервов
type PreReservationRepository interface {
	Create(ctx context.Context, pre *domain.PreReservation, items []domain.LineItem) error
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
