package update_prereservation

import (
	"context"

	updatePreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/update_prereservation"
)

type UpdatePreReservationUseCase interface {
	Execute(ctx context.Context, req *updatePreReservation.Request) (*updatePreReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
