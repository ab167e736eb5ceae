package sheets

import (
	"context"
	"fmt"
	"sort"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/googlesheets"
)

// PreReservationRepository пре-резервы и их позиции.
// Адресация строк листа не выходит за пределы этого типа: вызывающий код
// работает только с идентификаторами.
type PreReservationRepository struct {
	store RowStore
	log   Logger
}

// NewPreReservationRepository создает новый экземпляр репозитория пре-резервов
func NewPreReservationRepository(store RowStore, log Logger) *PreReservationRepository {
	return &PreReservationRepository{store: store, log: log}
}

// List возвращает все пре-резервы в порядке листа
func (r *PreReservationRepository) List(ctx context.Context) ([]domain.PreReservation, error) {
	sheet, err := r.store.List(ctx, sheetPreReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: List - list sheet: %v", ErrStore, err)
	}
	return decodePreReservations(sheet)
}

// ListByClient возвращает пре-резервы клиента
func (r *PreReservationRepository) ListByClient(ctx context.Context, clientID string) ([]domain.PreReservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PreReservation, 0)
	for _, p := range all {
		if p.ClientID == clientID {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetByID возвращает пре-резерв по ID
func (r *PreReservationRepository) GetByID(ctx context.Context, id string) (*domain.PreReservation, error) {
	sheet, err := r.store.List(ctx, sheetPreReservations)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - list sheet: %v", ErrStore, err)
	}

	idx := firstRowWhere(sheet, colPreReservationID, id)
	if idx < 0 {
		return nil, storage.ErrPreReservationNotFound
	}

	pre, err := decodePreReservation(sheet, idx)
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &pre, nil
}

// ListItems возвращает все позиции пре-резервов
func (r *PreReservationRepository) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	sheet, err := r.store.List(ctx, sheetPreReservationItems)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - list sheet: %v", ErrStore, err)
	}

	items := make([]domain.LineItem, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		items = append(items, decodeLineItem(sheet, i, colPreReservationID))
	}
	return items, nil
}

// ListItemsByPreReservation возвращает позиции одного пре-резерва
func (r *PreReservationRepository) ListItemsByPreReservation(ctx context.Context, id string) ([]domain.LineItem, error) {
	sheet, err := r.store.List(ctx, sheetPreReservationItems)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItemsByPreReservation - list sheet: %v", ErrStore, err)
	}

	rows := rowsWhere(sheet, colPreReservationID, id)
	items := make([]domain.LineItem, 0, len(rows))
	for _, i := range rows {
		items = append(items, decodeLineItem(sheet, i, colPreReservationID))
	}
	return items, nil
}

// Create записывает сначала позиции, затем заголовок.
// Если заголовок записать не удалось, добавленные позиции удаляются.
func (r *PreReservationRepository) Create(ctx context.Context, pre *domain.PreReservation, items []domain.LineItem) error {
	if err := r.store.AppendMany(ctx, sheetPreReservationItems, encodeLineItems(items)); err != nil {
		return fmt.Errorf("%w: Create - append items: %v", ErrStore, err)
	}

	if err := r.store.Append(ctx, sheetPreReservations, encodePreReservation(pre)); err != nil {
		r.log.Warn("Create: header append failed for pre_reservation=%s, rolling back items: %v", pre.ID, err)
		if rbErr := r.deleteItems(ctx, pre.ID); rbErr != nil {
			r.log.Error("Create: rollback failed for pre_reservation=%s: %v", pre.ID, rbErr)
			return fmt.Errorf("%w: Create - append header: %v; %w: %v", ErrStore, err, ErrRollback, rbErr)
		}
		return fmt.Errorf("%w: Create - append header: %v", ErrStore, err)
	}
	return nil
}

// Update перезаписывает строку заголовка пре-резерва
func (r *PreReservationRepository) Update(ctx context.Context, pre *domain.PreReservation) error {
	sheet, err := r.store.List(ctx, sheetPreReservations)
	if err != nil {
		return fmt.Errorf("%w: Update - list sheet: %v", ErrStore, err)
	}

	idx := firstRowWhere(sheet, colPreReservationID, pre.ID)
	if idx < 0 {
		return storage.ErrPreReservationNotFound
	}

	if err := r.store.UpdateRow(ctx, sheetPreReservations, googlesheets.RowNumber(idx), encodePreReservation(pre)); err != nil {
		return fmt.Errorf("%w: Update - update row: %v", ErrStore, err)
	}
	return nil
}

// ReplaceItems удаляет все позиции пре-резерва и записывает новые
func (r *PreReservationRepository) ReplaceItems(ctx context.Context, id string, items []domain.LineItem) error {
	if err := r.deleteItems(ctx, id); err != nil {
		return fmt.Errorf("ReplaceItems: %w", err)
	}
	if err := r.store.AppendMany(ctx, sheetPreReservationItems, encodeLineItems(items)); err != nil {
		return fmt.Errorf("%w: ReplaceItems - append items: %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет заголовок пре-резерва и все его позиции
func (r *PreReservationRepository) Delete(ctx context.Context, id string) error {
	sheet, err := r.store.List(ctx, sheetPreReservations)
	if err != nil {
		return fmt.Errorf("%w: Delete - list sheet: %v", ErrStore, err)
	}

	idx := firstRowWhere(sheet, colPreReservationID, id)
	if idx < 0 {
		return storage.ErrPreReservationNotFound
	}

	if err := r.store.DeleteRow(ctx, sheetPreReservations, googlesheets.RowNumber(idx)); err != nil {
		return fmt.Errorf("%w: Delete - delete header row: %v", ErrStore, err)
	}

	if err := r.deleteItems(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

// MarkNotificationSent выставляет флаг отправленного письма
func (r *PreReservationRepository) MarkNotificationSent(ctx context.Context, id string) error {
	sheet, err := r.store.List(ctx, sheetPreReservations)
	if err != nil {
		return fmt.Errorf("%w: MarkNotificationSent - list sheet: %v", ErrStore, err)
	}

	idx := firstRowWhere(sheet, colPreReservationID, id)
	if idx < 0 {
		return storage.ErrPreReservationNotFound
	}

	col := sheet.Column(colEmailSent)
	if col < 0 {
		return fmt.Errorf("%w: MarkNotificationSent - column %s is missing", storage.ErrMalformedRecord, colEmailSent)
	}

	if err := r.store.UpdateCell(ctx, sheetPreReservations, googlesheets.RowNumber(idx), col+1, emailSentYes); err != nil {
		return fmt.Errorf("%w: MarkNotificationSent - update cell: %v", ErrStore, err)
	}
	return nil
}

// deleteItems удаляет строки позиций снизу вверх, чтобы номера оставшихся строк не сдвигались
func (r *PreReservationRepository) deleteItems(ctx context.Context, id string) error {
	sheet, err := r.store.List(ctx, sheetPreReservationItems)
	if err != nil {
		return fmt.Errorf("%w: list items sheet: %v", ErrStore, err)
	}

	rows := rowsWhere(sheet, colPreReservationID, id)
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))

	for _, i := range rows {
		if err := r.store.DeleteRow(ctx, sheetPreReservationItems, googlesheets.RowNumber(i)); err != nil {
			return fmt.Errorf("%w: delete item row %d: %v", ErrStore, googlesheets.RowNumber(i), err)
		}
	}
	return nil
}

func decodePreReservations(sheet *googlesheets.Sheet) ([]domain.PreReservation, error) {
	result := make([]domain.PreReservation, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		pre, err := decodePreReservation(sheet, i)
		if err != nil {
			return nil, err
		}
		result = append(result, pre)
	}
	return result, nil
}

func encodeLineItems(items []domain.LineItem) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = encodeLineItem(item)
	}
	return rows
}
