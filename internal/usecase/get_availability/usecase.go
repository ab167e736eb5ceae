package get_availability

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
)

// UseCase use case расчета доступности экранов на период кампании
type UseCase struct {
	loader  SnapshotLoader
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		loader:  loader,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case. Чтение без блокировок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: client=%s, start=%s, weeks=%d, category=%s, exclude=%s",
		req.ClientID, req.StartDate, req.DurationWeeks, req.Category, req.ExcludePreReservationID)

	// 1. Валидация входных данных
	query, err := buildQuery(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем срез хранилища
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Исключать можно только собственный пре-резерв клиента
	if query.ExcludePreReservationID != "" {
		if pre, ok := snap.PreReservations.Find(query.ExcludePreReservationID); !ok || pre.ClientID != req.ClientID {
			uc.logger.Warn("GetAvailability: exclude=%s ignored, not owned by client=%s",
				query.ExcludePreReservationID, req.ClientID)
			query.ExcludePreReservationID = ""
		}
	}

	// 4. Считаем статусы экранов
	screens := availability.Resolve(snap, query)
	for _, screen := range screens {
		uc.metrics.IncScreenStatus(string(screen.Status))
	}

	uc.logger.Info("GetAvailability: resolved %d screens for window %s", len(screens), query.Window)
	return &Response{Window: query.Window, Screens: screens}, nil
}
