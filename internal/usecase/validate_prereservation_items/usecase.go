package validate_prereservation_items

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
)

// UseCase пробная проверка позиций пре-резерва без записи
type UseCase struct {
	loader SnapshotLoader
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, logger Logger) *UseCase {
	return &UseCase{
		loader: loader,
		logger: logger,
	}
}

// Execute выполняет use case. Отказ валидатора возвращается в Response, а не ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidatePreReservationItems: pre_reservation=%s, client=%s, items=%d",
		req.PreReservationID, req.ClientID, len(req.Items))

	// 1. Валидация входных данных
	input, err := buildInput(req)
	if err != nil {
		uc.logger.Warn("ValidatePreReservationItems: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем срез хранилища
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		uc.logger.Error("ValidatePreReservationItems: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Проверка
	result := availability.ValidateItems(snap, input)
	if !result.Valid {
		uc.logger.Info("ValidatePreReservationItems: rejected pre_reservation=%s: %s", req.PreReservationID, result.Reason)
	}

	return &Response{Valid: result.Valid, Error: result.Reason}, nil
}
