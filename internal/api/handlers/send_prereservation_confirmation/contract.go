package send_prereservation_confirmation

import (
	"context"

	sendConfirmation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/send_prereservation_confirmation"
)

type SendConfirmationUseCase interface {
	Execute(ctx context.Context, req *sendConfirmation.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
