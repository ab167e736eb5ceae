package create_prereservation

import (
	"context"

	createPreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/create_prereservation"
)

type CreatePreReservationUseCase interface {
	Execute(ctx context.Context, req *createPreReservation.Request) (*createPreReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
