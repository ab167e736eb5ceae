package prereservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
)

// Service сервис пре-резервов: просмотр, изменение дат, удаление
type Service struct {
	preRepo     PreReservationRepository
	catalogRepo CatalogRepository
	loader      SnapshotLoader
	locker      Locker
	logger      Logger
}

// NewService создает новый экземпляр сервиса пре-резервов
func NewService(
	preRepo PreReservationRepository,
	catalogRepo CatalogRepository,
	loader SnapshotLoader,
	locker Locker,
	logger Logger,
) *Service {
	return &Service{
		preRepo:     preRepo,
		catalogRepo: catalogRepo,
		loader:      loader,
		locker:      locker,
		logger:      logger,
	}
}

// ListByClient возвращает пре-резервы клиента
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]models.PreReservationResponse, error) {
	list, err := s.preRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d pre-reservations for client=%s", len(list), clientID)
	return models.FromDomainPreReservationList(list), nil
}

// GetDetail возвращает пре-резерв клиента с экранами, секундами и ценами
func (s *Service) GetDetail(ctx context.Context, id, clientID string) (*models.DetailResponse, error) {
	pre, err := s.getOwned(ctx, id, clientID, "GetDetail")
	if err != nil {
		return nil, err
	}

	items, err := s.preRepo.ListItemsByPreReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetDetail: failed to list items for pre_reservation=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetDetail - list items: %v", ErrInternal, err)
	}

	screens, err := s.catalogRepo.ListScreens(ctx)
	if err != nil {
		s.logger.Error("GetDetail: failed to list screens: %v", err)
		return nil, fmt.Errorf("%w: GetDetail - list screens: %v", ErrInternal, err)
	}

	rates, err := s.catalogRepo.ListRates(ctx)
	if err != nil {
		s.logger.Error("GetDetail: failed to list rates: %v", err)
		return nil, fmt.Errorf("%w: GetDetail - list rates: %v", ErrInternal, err)
	}

	screenByID := make(map[string]domain.Screen, len(screens))
	for _, sc := range screens {
		screenByID[sc.ID] = sc
	}
	rateByCode := make(map[string]domain.Rate, len(rates))
	for _, r := range rates {
		rateByCode[r.Code] = r
	}

	resp := &models.DetailResponse{
		ID:        pre.ID,
		StartDate: pre.Period.StartString(),
		EndDate:   pre.Period.EndString(),
		Weeks:     pre.Period.Weeks(),
		Screens:   make([]models.ScreenLine, 0, len(items)),
	}
	if !pre.CreatedAt.IsZero() {
		resp.CreatedAt = pre.CreatedAt.Format(domain.DateFormat)
	}
	if len(items) > 0 {
		resp.Category = items[0].Category.String()
	}

	for _, item := range items {
		screen := screenByID[item.ScreenID]
		rate := rateByCode[item.RateCode]
		resp.Screens = append(resp.Screens, models.ScreenLine{
			ID:       item.ScreenID,
			Cylinder: screen.Cylinder,
			Label:    screen.Label,
			RateCode: item.RateCode,
			Seconds:  rate.DurationSeconds,
			Price:    rate.WeeklyPrice,
		})
	}

	return resp, nil
}

// UpdateDates меняет даты пре-резерва и возвращает его в статус "pendiente".
// Сохраненные позиции проверяются на новом окне. Дата создания и флаг письма сохраняются.
func (s *Service) UpdateDates(ctx context.Context, req *models.UpdateDatesRequest) (*models.PreReservationResponse, error) {
	s.logger.Info("UpdateDates: pre_reservation=%s, client=%s, start=%s, end=%s", req.ID, req.ClientID, req.StartDate, req.EndDate)

	if req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	period, err := domain.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated domain.PreReservation
	err = s.locker.Do(ctx, func(ctx context.Context) error {
		pre, err := s.getOwned(ctx, req.ID, req.ClientID, "UpdateDates")
		if err != nil {
			return err
		}

		if err := s.validateWindow(ctx, pre, period); err != nil {
			return err
		}

		pre.Period = period
		pre.Status = domain.PreReservationPending
		if err := s.preRepo.Update(ctx, pre); err != nil {
			return s.mapRepoError(err, "UpdateDates", req.ID)
		}
		updated = *pre
		return nil
	}, domain.LockPreReservations, domain.LockPreReservationItems)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateDates: pre_reservation=%s updated", req.ID)
	resp := models.FromDomainPreReservation(updated)
	return &resp, nil
}

// Delete удаляет пре-резерв клиента вместе с позициями
func (s *Service) Delete(ctx context.Context, id, clientID string) error {
	err := s.locker.Do(ctx, func(ctx context.Context) error {
		if _, err := s.getOwned(ctx, id, clientID, "Delete"); err != nil {
			return err
		}
		if err := s.preRepo.Delete(ctx, id); err != nil {
			return s.mapRepoError(err, "Delete", id)
		}
		return nil
	}, domain.LockPreReservations, domain.LockPreReservationItems)
	if err != nil {
		return err
	}

	s.logger.Info("Delete: pre_reservation=%s deleted by client=%s", id, clientID)
	return nil
}

// validateWindow проверяет сохраненные позиции пре-резерва на новом окне.
// Позиции одной категории проверяются вместе, чтобы секунды на экране складывались.
func (s *Service) validateWindow(ctx context.Context, pre *domain.PreReservation, window domain.Period) error {
	items, err := s.preRepo.ListItemsByPreReservation(ctx, pre.ID)
	if err != nil {
		s.logger.Error("UpdateDates: failed to list items for pre_reservation=%s: %v", pre.ID, err)
		return fmt.Errorf("%w: UpdateDates - list items: %v", ErrInternal, err)
	}
	if len(items) == 0 {
		return nil
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("UpdateDates: failed to load snapshot: %v", err)
		return fmt.Errorf("%w: UpdateDates - load snapshot: %v", ErrInternal, err)
	}

	// Емкость считается по всем позициям, категория - по каждой группе
	all := make([]domain.ItemSpec, 0, len(items))
	byCategory := make(map[domain.Category][]domain.ItemSpec)
	categories := make([]domain.Category, 0, 1)
	for _, item := range items {
		spec := domain.ItemSpec{ScreenID: item.ScreenID, RateCode: item.RateCode}
		all = append(all, spec)
		if _, ok := byCategory[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], spec)
	}

	checks := []availability.ValidationInput{{Items: all, Category: categories[0]}}
	for _, category := range categories[1:] {
		checks = append(checks, availability.ValidationInput{Items: byCategory[category], Category: category})
	}

	for _, check := range checks {
		check.PreReservationID = pre.ID
		check.Window = &window
		check.ClientID = pre.ClientID

		verdict := availability.ValidateItems(snap, check)
		if err := verdict.Err(); err != nil {
			s.logger.Warn("UpdateDates: rejected pre_reservation=%s: %s", pre.ID, verdict.Reason)
			return err
		}
	}
	return nil
}

// getOwned возвращает пре-резерв, только если он принадлежит клиенту
func (s *Service) getOwned(ctx context.Context, id, clientID, op string) (*domain.PreReservation, error) {
	pre, err := s.preRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, op, id)
	}
	if !pre.IsOwnedBy(clientID) {
		s.logger.Warn("%s: pre_reservation=%s is not owned by client=%s", op, id, clientID)
		return nil, ErrPreReservationNotFound
	}
	return pre, nil
}

func (s *Service) mapRepoError(err error, op, id string) error {
	if errors.Is(err, storage.ErrPreReservationNotFound) {
		s.logger.Warn("%s: pre_reservation=%s not found", op, id)
		return ErrPreReservationNotFound
	}
	s.logger.Error("%s: repository error for pre_reservation=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
