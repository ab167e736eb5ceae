package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type stubReservations struct {
	list  []domain.Reservation
	items []domain.LineItem
}

func (s stubReservations) ListByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	result := make([]domain.Reservation, 0)
	for _, r := range s.list {
		if r.ClientID == clientID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s stubReservations) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	return s.items, nil
}

type stubCatalog struct{}

func (stubCatalog) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	return []domain.Screen{{ID: "s1", Cylinder: 1, Label: "A"}, {ID: "s2", Cylinder: 1, Label: "B"}}, nil
}

func (stubCatalog) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return []domain.Rate{{Code: "R10", DurationSeconds: 10, WeeklyPrice: 100000}, {Code: "R20", DurationSeconds: 20, WeeklyPrice: 180000}}, nil
}

func TestListCompleteByClient(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := stubReservations{
		list: []domain.Reservation{
			{ID: "r1", ClientID: "c1", Period: domain.Period{Start: start, End: start.AddDate(0, 0, 20)}},
			{ID: "r2", ClientID: "c2", Period: domain.Period{Start: start, End: start.AddDate(0, 0, 7)}},
		},
		items: []domain.LineItem{
			{ID: "i1", BookingID: "r1", ScreenID: "s1", RateCode: "R10", Category: "moda"},
			{ID: "i2", BookingID: "r1", ScreenID: "s2", RateCode: "R20", Category: "moda"},
			{ID: "i3", BookingID: "r1", ScreenID: "s9", RateCode: "R20", Category: "moda"},
			{ID: "i4", BookingID: "r1", ScreenID: "s1", RateCode: "RX", Category: "moda"},
			{ID: "i5", BookingID: "r2", ScreenID: "s1", RateCode: "R10", Category: "salud"},
		},
	}

	svc := NewService(repo, stubCatalog{}, logger.NewNop())
	got, err := svc.ListCompleteByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, 2, r.Weeks) // 20 дней = 2 полные недели
	assert.Equal(t, "moda", r.Category)
	assert.Len(t, r.Screens, 2)
	assert.Equal(t, int64(280000), r.Subtotal)
	assert.Equal(t, "B", r.Screens[1].Label)
}

func TestListByClient(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := stubReservations{list: []domain.Reservation{
		{ID: "r1", ClientID: "c1", Period: domain.Period{Start: start, End: start.AddDate(0, 0, 7)}},
	}}

	got, err := NewService(repo, stubCatalog{}, logger.NewNop()).ListByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-08", got[0].EndDate)
	assert.Empty(t, got[0].CreatedAt)
}
