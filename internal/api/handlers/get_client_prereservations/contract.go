package get_client_prereservations

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
)

type PreReservationService interface {
	ListByClient(ctx context.Context, clientID string) ([]models.PreReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
