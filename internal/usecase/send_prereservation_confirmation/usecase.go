package send_prereservation_confirmation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
)

// UseCase use case для однократной отправки письма-подтверждения
type UseCase struct {
	preRepo  PreReservationRepository
	notifier Notifier
	locker   Locker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(preRepo PreReservationRepository, notifier Notifier, locker Locker, logger Logger) *UseCase {
	return &UseCase{
		preRepo:  preRepo,
		notifier: notifier,
		locker:   locker,
		logger:   logger,
	}
}

// Execute передает письмо на доставку и выставляет флаг отправки.
// Флаг выставляется только после успешной передачи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("SendPreReservationConfirmation: pre_reservation=%s, client=%s, recipient=%s",
		req.ID, req.ClientID, req.Notice.Recipient)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendPreReservationConfirmation: validation failed: %v", err)
		return err
	}

	return uc.locker.Do(ctx, func(ctx context.Context) error {
		// 2. Проверка владельца и флага
		pre, err := uc.preRepo.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, storage.ErrPreReservationNotFound) {
				return ErrPreReservationNotFound
			}
			uc.logger.Error("SendPreReservationConfirmation: failed to get pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get pre-reservation: %v", ErrInternal, err)
		}
		if !pre.IsOwnedBy(req.ClientID) {
			uc.logger.Warn("SendPreReservationConfirmation: pre_reservation=%s is not owned by client=%s", req.ID, req.ClientID)
			return ErrPreReservationNotFound
		}
		if pre.NotificationSent {
			uc.logger.Warn("SendPreReservationConfirmation: pre_reservation=%s already notified", req.ID)
			return ErrAlreadySent
		}

		// 3. Дополняем письмо данными пре-резерва
		notice := completeNotice(req.Notice, pre)

		// 4. Передача на доставку
		if err := uc.notifier.Send(ctx, notice); err != nil {
			uc.logger.Error("SendPreReservationConfirmation: failed to send pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: %v", ErrDelivery, err)
		}

		// 5. Флаг отправки
		if err := uc.preRepo.MarkNotificationSent(ctx, req.ID); err != nil {
			uc.logger.Error("SendPreReservationConfirmation: mail sent but flag not set for pre_reservation=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to mark notification: %v", ErrInternal, err)
		}

		uc.logger.Info("SendPreReservationConfirmation: pre_reservation=%s notified", req.ID)
		return nil
	}, domain.LockPreReservations)
}

func completeNotice(notice domain.ConfirmationNotice, pre *domain.PreReservation) domain.ConfirmationNotice {
	notice.PreReservationID = pre.ID
	notice.Recipient = strings.TrimSpace(notice.Recipient)
	if notice.StartDate == "" {
		notice.StartDate = pre.Period.StartString()
	}
	if notice.EndDate == "" {
		notice.EndDate = pre.Period.EndString()
	}
	if notice.Weeks == 0 {
		notice.Weeks = pre.Period.Weeks()
	}
	return notice
}
