package update_prereservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
)

// UseCase use case для полного обновления пре-резерва
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

// Execute выполняет use case. Держит блокировки и заголовков, и позиций.
// Позиции проверяются на новом окне, флаг письма сбрасывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePreReservation: pre_reservation=%s, client=%s, start=%s, end=%s, items=%d",
		req.ID, req.ClientID, req.StartDate, req.EndDate, len(req.Items))

	// 1. Валидация входных данных
	period, category, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdatePreReservation: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Проверка и запись под обеими блокировками
	err = uc.locker.Do(ctx, func(ctx context.Context) error {
		// 2.1. Пре-резерв должен принадлежать клиенту
		pre, err := uc.preRepo.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, storage.ErrPreReservationNotFound) {
				uc.logger.Warn("UpdatePreReservation: pre_reservation=%s not found", req.ID)
				return ErrPreReservationNotFound
			}
			uc.logger.Error("UpdatePreReservation: failed to get pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get pre-reservation: %v", ErrInternal, err)
		}
		if !pre.IsOwnedBy(req.ClientID) {
			uc.logger.Warn("UpdatePreReservation: pre_reservation=%s is not owned by client=%s", req.ID, req.ClientID)
			return ErrPreReservationNotFound
		}

		// 2.2. Проверяем позиции на новом окне без собственных позиций
		snap, err := uc.loader.Load(ctx)
		if err != nil {
			uc.logger.Error("UpdatePreReservation: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		verdict := availability.ValidateItems(snap, availability.ValidationInput{
			PreReservationID: req.ID,
			Window:           &period,
			Items:            req.Items,
			Category:         category,
			ClientID:         req.ClientID,
		})
		if err := verdict.Err(); err != nil {
			uc.logger.Warn("UpdatePreReservation: rejected pre_reservation=%s: %s", req.ID, verdict.Reason)
			return err
		}

		// 2.3. Перезаписываем заголовок
		pre.Period = period
		pre.Status = domain.PreReservationPending
		pre.NotificationSent = false
		if err := uc.preRepo.Update(ctx, pre); err != nil {
			uc.logger.Error("UpdatePreReservation: failed to update pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update pre-reservation: %v", ErrInternal, err)
		}

		// 2.4. Заменяем позиции
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
			uc.logger.Error("UpdatePreReservation: failed to replace items of pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to replace items: %v", ErrInternal, err)
		}

		result = &Response{ID: req.ID, Period: period, Items: len(items)}
		return nil
	}, domain.LockPreReservations, domain.LockPreReservationItems)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePreReservation: pre_reservation=%s updated with %d items", result.ID, result.Items)
	return result, nil
}
