package availability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

func period(t *testing.T, start, end string) domain.Period {
	t.Helper()
	p, err := domain.ParsePeriod(start, end)
	require.NoError(t, err)
	return p
}

// snapshotBuilder собирает срез данных для тестов
type snapshotBuilder struct {
	t            *testing.T
	screens      []domain.Screen
	rates        []domain.Rate
	reservations []domain.Reservation
	resItems     []domain.LineItem
	pre          []domain.PreReservation
	preItems     []domain.LineItem
}

func newSnapshot(t *testing.T) *snapshotBuilder {
	return &snapshotBuilder{
		t: t,
		rates: []domain.Rate{
			{Code: "R10", DurationSeconds: 10, WeeklyPrice: 100000},
			{Code: "R20", DurationSeconds: 20, WeeklyPrice: 180000},
			{Code: "R30", DurationSeconds: 30, WeeklyPrice: 250000},
			{Code: "R50", DurationSeconds: 50, WeeklyPrice: 400000},
			{Code: "R60", DurationSeconds: 60, WeeklyPrice: 450000},
		},
	}
}

func (b *snapshotBuilder) screen(id string, cylinder int, label string) *snapshotBuilder {
	b.screens = append(b.screens, domain.Screen{ID: id, Cylinder: cylinder, Label: label})
	return b
}

func (b *snapshotBuilder) reservation(id, client, start, end string, items ...domain.LineItem) *snapshotBuilder {
	b.reservations = append(b.reservations, domain.Reservation{ID: id, ClientID: client, Period: period(b.t, start, end)})
	for _, it := range items {
		it.BookingID = id
		b.resItems = append(b.resItems, it)
	}
	return b
}

func (b *snapshotBuilder) preReservation(id, client, start, end string, items ...domain.LineItem) *snapshotBuilder {
	b.pre = append(b.pre, domain.PreReservation{
		ID:       id,
		ClientID: client,
		Period:   period(b.t, start, end),
		Status:   domain.PreReservationPending,
	})
	for _, it := range items {
		it.BookingID = id
		b.preItems = append(b.preItems, it)
	}
	return b
}

func (b *snapshotBuilder) build() *Snapshot {
	return NewSnapshot(b.screens, b.rates, b.reservations, b.resItems, b.pre, b.preItems)
}

func item(screenID, rateCode string, category domain.Category) domain.LineItem {
	return domain.LineItem{ScreenID: screenID, RateCode: rateCode, Category: category}
}
