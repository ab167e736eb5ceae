package sheets

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// ReservationRepository резервы (только чтение)
type ReservationRepository struct {
	store RowStore
}

// NewReservationRepository создает новый экземпляр репозитория резервов
func NewReservationRepository(store RowStore) *ReservationRepository {
	return &ReservationRepository{store: store}
}

// List возвращает все резервы в порядке листа
func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	sheet, err := r.store.List(ctx, sheetReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: List - list sheet: %v", ErrStore, err)
	}

	reservations := make([]domain.Reservation, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		res, err := decodeReservation(sheet, i)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// ListByClient возвращает резервы клиента
func (r *ReservationRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Reservation, 0)
	for _, res := range all {
		if res.ClientID == clientID {
			result = append(result, res)
		}
	}
	return result, nil
}

// ListItems возвращает все позиции резервов
func (r *ReservationRepository) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	sheet, err := r.store.List(ctx, sheetReservationItems)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - list sheet: %v", ErrStore, err)
	}

	items := make([]domain.LineItem, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		items = append(items, decodeLineItem(sheet, i, colReservationID))
	}
	return items, nil
}
