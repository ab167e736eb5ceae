package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

type stubCatalog struct {
	screens []domain.Screen
	rates   []domain.Rate
	err     error
}

func (s stubCatalog) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	return s.screens, nil
}

func (s stubCatalog) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return s.rates, s.err
}

type stubReservations struct {
	list  []domain.Reservation
	items []domain.LineItem
}

func (s stubReservations) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.list, nil
}

func (s stubReservations) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	return s.items, nil
}

type stubPreReservations struct {
	list  []domain.PreReservation
	items []domain.LineItem
}

func (s stubPreReservations) List(ctx context.Context) ([]domain.PreReservation, error) {
	return s.list, nil
}

func (s stubPreReservations) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	return s.items, nil
}

func TestLoader_Load(t *testing.T) {
	period := domain.Period{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)}

	loader := NewLoader(
		stubCatalog{
			screens: []domain.Screen{{ID: "s1", Cylinder: 1, Label: "A"}},
			rates:   []domain.Rate{{Code: "R10", DurationSeconds: 10}},
		},
		stubReservations{
			list:  []domain.Reservation{{ID: "r1", ClientID: "c1", Period: period}},
			items: []domain.LineItem{{ID: "i1", BookingID: "r1", ScreenID: "s1", RateCode: "R10"}},
		},
		stubPreReservations{
			list:  []domain.PreReservation{{ID: "p1", ClientID: "c2", Period: period}},
			items: []domain.LineItem{{ID: "i2", BookingID: "p1", ScreenID: "s1", RateCode: "R10"}},
		},
	)

	snap, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Screens, 1)
	assert.Len(t, snap.Rates, 1)
	assert.Len(t, snap.Reservations.Items["r1"], 1)
	assert.Equal(t, domain.KindPreReservation, snap.PreReservations.Bookings[0].Kind)
}

func TestLoader_FailsWhenAnyReadFails(t *testing.T) {
	boom := errors.New("store down")
	loader := NewLoader(stubCatalog{err: boom}, stubReservations{}, stubPreReservations{})

	snap, err := loader.Load(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, boom)
}
