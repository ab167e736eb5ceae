package get_prereservation_detail

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
)

type PreReservationService interface {
	GetDetail(ctx context.Context, id, clientID string) (*models.DetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
