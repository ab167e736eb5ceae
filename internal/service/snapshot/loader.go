package snapshot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// Loader читает все шесть коллекций параллельно и собирает срез для расчета доступности
type Loader struct {
	catalog         CatalogRepository
	reservations    ReservationRepository
	preReservations PreReservationRepository
}

// NewLoader создает загрузчик среза
func NewLoader(catalog CatalogRepository, reservations ReservationRepository, preReservations PreReservationRepository) *Loader {
	return &Loader{
		catalog:         catalog,
		reservations:    reservations,
		preReservations: preReservations,
	}
}

// Load возвращает срез, только когда успешно завершились все чтения
func (l *Loader) Load(ctx context.Context) (*availability.Snapshot, error) {
	var (
		screens             []domain.Screen
		rates               []domain.Rate
		reservations        []domain.Reservation
		reservationItems    []domain.LineItem
		preReservations     []domain.PreReservation
		preReservationItems []domain.LineItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		screens, err = l.catalog.ListScreens(gctx)
		return wrap("screens", err)
	})
	g.Go(func() (err error) {
		rates, err = l.catalog.ListRates(gctx)
		return wrap("rates", err)
	})
	g.Go(func() (err error) {
		reservations, err = l.reservations.List(gctx)
		return wrap("reservations", err)
	})
	g.Go(func() (err error) {
		reservationItems, err = l.reservations.ListItems(gctx)
		return wrap("reservation items", err)
	})
	g.Go(func() (err error) {
		preReservations, err = l.preReservations.List(gctx)
		return wrap("pre-reservations", err)
	})
	g.Go(func() (err error) {
		preReservationItems, err = l.preReservations.ListItems(gctx)
		return wrap("pre-reservation items", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return availability.NewSnapshot(screens, rates, reservations, reservationItems, preReservations, preReservationItems), nil
}

func wrap(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: Load - %s: %w", ErrLoad, collection, err)
}
