package reservations

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/reservations/models"
)

// Service сервис истории резервов клиента
type Service struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса резервов
func NewService(reservationRepo ReservationRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// ListByClient возвращает резервы клиента
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]models.ReservationResponse, error) {
	list, err := s.reservationRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d reservations for client=%s", len(list), clientID)
	return models.FromDomainReservationList(list), nil
}

// ListCompleteByClient возвращает резервы клиента с экранами, ценами и числом недель.
// Позиции с неизвестным экраном или тарифом пропускаются.
func (s *Service) ListCompleteByClient(ctx context.Context, clientID string) ([]models.CompleteReservationResponse, error) {
	list, err := s.reservationRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListCompleteByClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListCompleteByClient - list reservations: %v", ErrInternal, err)
	}

	items, err := s.reservationRepo.ListItems(ctx)
	if err != nil {
		s.logger.Error("ListCompleteByClient: failed to list items: %v", err)
		return nil, fmt.Errorf("%w: ListCompleteByClient - list items: %v", ErrInternal, err)
	}

	screens, err := s.catalogRepo.ListScreens(ctx)
	if err != nil {
		s.logger.Error("ListCompleteByClient: failed to list screens: %v", err)
		return nil, fmt.Errorf("%w: ListCompleteByClient - list screens: %v", ErrInternal, err)
	}

	rates, err := s.catalogRepo.ListRates(ctx)
	if err != nil {
		s.logger.Error("ListCompleteByClient: failed to list rates: %v", err)
		return nil, fmt.Errorf("%w: ListCompleteByClient - list rates: %v", ErrInternal, err)
	}

	screenByID := make(map[string]domain.Screen, len(screens))
	for _, sc := range screens {
		screenByID[sc.ID] = sc
	}
	rateByCode := make(map[string]domain.Rate, len(rates))
	for _, r := range rates {
		rateByCode[r.Code] = r
	}
	itemsByReservation := make(map[string][]domain.LineItem)
	for _, item := range items {
		itemsByReservation[item.BookingID] = append(itemsByReservation[item.BookingID], item)
	}

	result := make([]models.CompleteReservationResponse, 0, len(list))
	for _, r := range list {
		own := itemsByReservation[r.ID]

		resp := models.CompleteReservationResponse{
			ID:        r.ID,
			StartDate: r.Period.StartString(),
			EndDate:   r.Period.EndString(),
			Weeks:     r.Period.Weeks(),
			Screens:   make([]models.ScreenLine, 0, len(own)),
		}
		if len(own) > 0 {
			resp.Category = own[0].Category.String()
		}

		for _, item := range own {
			rate, rateOK := rateByCode[item.RateCode]
			screen, screenOK := screenByID[item.ScreenID]
			if !rateOK || !screenOK {
				continue
			}
			resp.Screens = append(resp.Screens, models.ScreenLine{
				ID:       item.ScreenID,
				Cylinder: screen.Cylinder,
				Label:    screen.Label,
				Seconds:  rate.DurationSeconds,
				Price:    rate.WeeklyPrice,
			})
			resp.Subtotal += rate.WeeklyPrice
		}

		result = append(result, resp)
	}

	s.logger.Info("ListCompleteByClient: fetched %d reservations for client=%s", len(result), clientID)
	return result, nil
}
