package validate_prereservation_items

import (
	"context"

	validateItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/validate_prereservation_items"
)

type ValidateItemsUseCase interface {
	Execute(ctx context.Context, req *validateItems.Request) (*validateItems.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
