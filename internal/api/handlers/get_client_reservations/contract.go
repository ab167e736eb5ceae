package get_client_reservations

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/reservations/models"
)

type ReservationService interface {
	ListByClient(ctx context.Context, clientID string) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
