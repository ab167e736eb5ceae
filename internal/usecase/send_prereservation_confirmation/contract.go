package send_prereservation_confirmation

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// PreReservationRepository интерфейс репозитория пре-резервов
type PreReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PreReservation, error)
	MarkNotificationSent(ctx context.Context, id string) error
}

// Notifier доставка письма-подтверждения: очередь или SMTP напрямую
type Notifier interface {
	Send(ctx context.Context, notice domain.ConfirmationNotice) error
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
