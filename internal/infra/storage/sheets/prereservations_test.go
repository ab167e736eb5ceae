package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

func seededStore() *fakeStore {
	return newFakeStore().
		with(sheetPreReservations, preReservationColumns,
			[]string{"pre1", "c1", "2024-01-01", "2024-01-08", "pendiente", "2023-12-20", "no"},
			[]string{"pre2", "c2", "2024-02-01", "2024-02-15", "pendiente", "2023-12-21", "sí"},
			[]string{"pre3", "c1", "2024-03-01", "2024-03-08", "pendiente", "2023-12-22", "no"},
		).
		with(sheetPreReservationItems, itemHeader,
			[]string{"d1", "pre1", "S1", "bebidas", "R10"},
			[]string{"d2", "pre2", "S2", "bancos", "R20"},
			[]string{"d3", "pre1", "S3", "bebidas", "R10"},
			[]string{"d4", "pre3", "S1", "ropa", "R30"},
			[]string{"d5", "pre1", "S4", "bebidas", "R50"},
		)
}

func newRepo(store RowStore) *PreReservationRepository {
	return NewPreReservationRepository(store, logger.NewNop())
}

func TestPreReservationRepository_Decode(t *testing.T) {
	repo := newRepo(seededStore())

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "pre2", all[1].ID)
	assert.True(t, all[1].NotificationSent)
	assert.False(t, all[0].NotificationSent)
	assert.Equal(t, domain.PreReservationPending, all[0].Status)
	assert.Equal(t, "2024-01-08", all[0].Period.EndString())

	mine, err := repo.ListByClient(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	items, err := repo.ListItemsByPreReservation(context.Background(), "pre1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "S4", items[2].ScreenID)
	assert.Equal(t, domain.Category("bebidas"), items[0].Category)
}

func TestPreReservationRepository_GetByIDNotFound(t *testing.T) {
	repo := newRepo(seededStore())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrPreReservationNotFound)
}

func TestPreReservationRepository_ReplaceItemsDeletesBottomUp(t *testing.T) {
	store := seededStore()
	repo := newRepo(store)

	err := repo.ReplaceItems(context.Background(), "pre1", []domain.LineItem{
		{ID: "n1", BookingID: "pre1", ScreenID: "S9", RateCode: "R20", Category: "bebidas"},
	})
	require.NoError(t, err)

	// строки 2, 4, 6 удаляются в обратном порядке
	assert.Equal(t, []int{6, 4, 2}, store.deletedRows[sheetPreReservationItems])
	assert.Equal(t, []string{"d2", "d4", "n1"}, store.ids(sheetPreReservationItems, colItemID))
}

func TestPreReservationRepository_Delete(t *testing.T) {
	store := seededStore()
	repo := newRepo(store)

	require.NoError(t, repo.Delete(context.Background(), "pre1"))

	assert.Equal(t, []int{2}, store.deletedRows[sheetPreReservations])
	assert.Equal(t, []string{"pre2", "pre3"}, store.ids(sheetPreReservations, colPreReservationID))
	assert.Equal(t, []string{"d2", "d4"}, store.ids(sheetPreReservationItems, colItemID))

	err := repo.Delete(context.Background(), "pre1")
	assert.ErrorIs(t, err, storage.ErrPreReservationNotFound)
}

func TestPreReservationRepository_CreateRollsBackItems(t *testing.T) {
	store := seededStore()
	store.appendErr[sheetPreReservations] = errors.New("quota exceeded")
	repo := newRepo(store)

	pre := &domain.PreReservation{
		ID:        "new1",
		ClientID:  "c9",
		Period:    domain.Period{Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
		Status:    domain.PreReservationPending,
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	items := []domain.LineItem{
		{ID: "x1", BookingID: "new1", ScreenID: "S1", RateCode: "R10", Category: "ropa"},
		{ID: "x2", BookingID: "new1", ScreenID: "S2", RateCode: "R10", Category: "ropa"},
	}

	err := repo.Create(context.Background(), pre, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)

	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5"}, store.ids(sheetPreReservationItems, colItemID))
	assert.Equal(t, []int{8, 7}, store.deletedRows[sheetPreReservationItems])
}

func TestPreReservationRepository_CreateWritesRows(t *testing.T) {
	store := seededStore()
	repo := newRepo(store)

	pre := &domain.PreReservation{
		ID:        "new1",
		ClientID:  "c9",
		Period:    domain.Period{Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
		Status:    domain.PreReservationPending,
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Create(context.Background(), pre, []domain.LineItem{
		{ID: "x1", BookingID: "new1", ScreenID: "S1", RateCode: "R10", Category: "ropa"},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "new1")
	require.NoError(t, err)
	assert.Equal(t, "c9", got.ClientID)
	assert.Equal(t, "2024-05-01", got.Period.StartString())
	assert.False(t, got.NotificationSent)

	s := store.sheets[sheetPreReservationItems]
	assert.Equal(t, []string{"x1", "new1", "S1", "ropa", "R10"}, s.Rows[len(s.Rows)-1])
}

func TestPreReservationRepository_UpdateAndMarkSent(t *testing.T) {
	store := seededStore()
	repo := newRepo(store)
	ctx := context.Background()

	pre, err := repo.GetByID(ctx, "pre3")
	require.NoError(t, err)

	pre.Period = domain.Period{Start: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Update(ctx, pre))

	require.NoError(t, repo.MarkNotificationSent(ctx, "pre3"))
	assert.Equal(t, []cellUpdate{{sheet: sheetPreReservations, row: 4, col: 7, value: "sí"}}, store.cells)

	got, err := repo.GetByID(ctx, "pre3")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-17", got.Period.EndString())
	assert.Equal(t, "2023-12-22", got.CreatedAt.Format(domain.DateFormat))
	assert.True(t, got.NotificationSent)
}
