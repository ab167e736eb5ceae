package replace_prereservation_items

import (
	"context"
	"errors"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
)

// UseCase use case для замены позиций пре-резерва
type UseCase struct {
	preRepo PreReservationRepository
	loader  SnapshotLoader
	locker  Locker
	ids     IDGenerator
	logger  Logger
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
		preRepo: preRepo,
		loader:  loader,
		locker:  locker,
		ids:     ids,
		logger:  logger,
	}
}

// Execute проверяет новые позиции на окне пре-резерва и заменяет ими старые
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplacePreReservationItems: pre_reservation=%s, client=%s, items=%d",
		req.ID, req.ClientID, len(req.Items))

	// 1. Валидация входных данных
	category, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ReplacePreReservationItems: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err = uc.locker.Do(ctx, func(ctx context.Context) error {
		// 2. Проверка владельца
		pre, err := uc.preRepo.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, storage.ErrPreReservationNotFound) {
				return ErrPreReservationNotFound
			}
			uc.logger.Error("ReplacePreReservationItems: failed to get pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get pre-reservation: %v", ErrInternal, err)
		}
		if !pre.IsOwnedBy(req.ClientID) {
			uc.logger.Warn("ReplacePreReservationItems: pre_reservation=%s is not owned by client=%s", req.ID, req.ClientID)
			return ErrPreReservationNotFound
		}

		// 3. Проверка позиций на сохраненном окне
		snap, err := uc.loader.Load(ctx)
		if err != nil {
			uc.logger.Error("ReplacePreReservationItems: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		verdict := availability.ValidateItems(snap, availability.ValidationInput{
			PreReservationID: req.ID,
			Items:            req.Items,
			Category:         category,
			ClientID:         req.ClientID,
		})
		if err := verdict.Err(); err != nil {
			uc.logger.Warn("ReplacePreReservationItems: rejected pre_reservation=%s: %s", req.ID, verdict.Reason)
			return err
		}

		// 4. Замена позиций
		items := make([]domain.LineItem, 0, len(req.Items))
		for _, spec := range req.Items {
			items = append(items, domain.LineItem{
				ID:        uc.ids.NewID(),
				BookingID: req.ID,
				ScreenID:  spec.ScreenID,
				RateCode:  spec.RateCode,
				Category:  category,
			})
		}
		if err := uc.preRepo.ReplaceItems(ctx, req.ID, items); err != nil {
			uc.logger.Error("ReplacePreReservationItems: failed to replace items of pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to replace items: %v", ErrInternal, err)
		}

		result = &Response{ID: req.ID, Items: len(items)}
		return nil
	}, domain.LockPreReservationItems)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReplacePreReservationItems: pre_reservation=%s now has %d items", result.ID, result.Items)
	return result, nil
}
