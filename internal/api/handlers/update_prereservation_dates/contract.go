package update_prereservation_dates

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
)

type PreReservationService interface {
	UpdateDates(ctx context.Context, req *models.UpdateDatesRequest) (*models.PreReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
