package replace_prereservation_items

import (
	"context"

	replaceItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/replace_prereservation_items"
)

type ReplaceItemsUseCase interface {
	Execute(ctx context.Context, req *replaceItems.Request) (*replaceItems.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
