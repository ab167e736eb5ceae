package create_prereservation

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// UseCase use case для создания пре-резерва вместе с позициями
type UseCase struct {
	preRepo      PreReservationRepository
	loader       SnapshotLoader
	locker       Locker
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	preRepo PreReservationRepository,
	loader SnapshotLoader,
	locker Locker,
	ids IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		preRepo:      preRepo,
		loader:       loader,
		locker:       locker,
		ids:          ids,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания пре-резерва.
// Проверка емкости и категории, запись и откат позиций идут под блокировками заголовков и позиций.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePreReservation: client=%s, start=%s, end=%s, category=%s, items=%d",
		req.ClientID, req.StartDate, req.EndDate, req.Category, len(req.Items))

	// 1. Валидация входных данных
	period, category, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreatePreReservation: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Проверка и запись под блокировкой
	err = uc.locker.Do(ctx, func(ctx context.Context) error {
		// 2.1. Загружаем срез хранилища
		snap, err := uc.loader.Load(ctx)
		if err != nil {
			uc.logger.Error("CreatePreReservation: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		// 2.2. Проверяем позиции на окне нового пре-резерва
		verdict := availability.ValidateItems(snap, availability.ValidationInput{
			Window:   &period,
			Items:    req.Items,
			Category: category,
			ClientID: req.ClientID,
		})
		if err := verdict.Err(); err != nil {
			uc.logger.Warn("CreatePreReservation: rejected for client=%s: %s", req.ClientID, verdict.Reason)
			return err
		}

		// 2.3. Записываем позиции и заголовок
		pre := &domain.PreReservation{
			ID:        uc.ids.NewID(),
			ClientID:  req.ClientID,
			Period:    period,
			Status:    domain.PreReservationPending,
			CreatedAt: uc.timeProvider.Now(),
		}
		items := buildItems(pre.ID, req.Items, category, uc.ids)

		if err := uc.preRepo.Create(ctx, pre, items); err != nil {
			uc.logger.Error("CreatePreReservation: failed to create pre_reservation=%s: %v", pre.ID, err)
			return fmt.Errorf("%w: failed to create pre-reservation: %v", ErrInternal, err)
		}

		result = &Response{ID: pre.ID, Period: period, Items: len(items)}
		return nil
	}, domain.LockPreReservations, domain.LockPreReservationItems)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePreReservation: created pre_reservation=%s with %d items", result.ID, result.Items)
	return result, nil
}

// buildItems строит позиции пре-резерва с новыми ID и общей категорией
func buildItems(preID string, specs []domain.ItemSpec, category domain.Category, ids IDGenerator) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(specs))
	for _, spec := range specs {
		items = append(items, domain.LineItem{
			ID:        ids.NewID(),
			BookingID: preID,
			ScreenID:  spec.ScreenID,
			RateCode:  spec.RateCode,
			Category:  category,
		})
	}
	return items
}
