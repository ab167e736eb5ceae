package snapshot

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// CatalogRepository справочники экранов и тарифов
type CatalogRepository interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// ReservationRepository интерфейс репозитория резервов
type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListItems(ctx context.Context) ([]domain.LineItem, error)
}

// PreReservationRepository интерфейс репозитория пре-резервов
type PreReservationRepository interface {
	List(ctx context.Context) ([]domain.PreReservation, error)
	ListItems(ctx context.Context) ([]domain.LineItem, error)
}
