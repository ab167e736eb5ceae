package get_availability

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
)

// SnapshotLoader загрузчик согласованного среза хранилища
type SnapshotLoader interface {
	Load(ctx context.Context) (*availability.Snapshot, error)
}

// Metrics счетчик статусов экранов в ответах
type Metrics interface {
	IncScreenStatus(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
