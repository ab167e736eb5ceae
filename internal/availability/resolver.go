package availability

import (
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// Query параметры расчета доступности
type Query struct {
	Window                  domain.Period
	Category                domain.Category
	ClientID                string
	ExcludePreReservationID string // собственный пре-резерв клиента, который он редактирует
}

// Resolve вычисляет статус каждого экрана среза для запрошенного окна.
// Ключ результата - ID экрана.
func Resolve(snap *Snapshot, q Query) map[string]domain.ScreenAvailability {
	view := snap.WithoutPreReservation(q.ExcludePreReservationID)
	occ := NewOccupancy(view, q.Window)

	result := make(map[string]domain.ScreenAvailability, len(view.Screens))
	for _, screen := range view.Screens {
		result[screen.ID] = resolveScreen(occ, view, screen, q)
	}
	return result
}

func resolveScreen(occ *Occupancy, view *Snapshot, screen domain.Screen, q Query) domain.ScreenAvailability {
	// 1. Свободные секунды и вердикт по категории
	verdict := EvaluateScreenConflict(occ, ScreenCheck{
		ScreenID: screen.ID,
		Category: q.Category,
		ClientID: q.ClientID,
	})
	available := verdict.AvailableSeconds

	sa := domain.ScreenAvailability{
		ScreenID:         screen.ID,
		Cylinder:         screen.Cylinder,
		Label:            screen.Label,
		AvailableSeconds: available,
	}

	// 2. Конфликты по резервам и пре-резервам
	reservationConflicts := FindConflicts(q.Window, view.Reservations, screen.ID)
	preReservationConflicts := FindConflicts(q.Window, view.PreReservations, screen.ID)

	// 3-5. Пре-резервы важнее простой частичной занятости
	switch {
	case len(preReservationConflicts) > 0:
		sa.Status = partialOr(available, domain.ScreenReserved)
		sa.Message = activePeriodsMessage(preReservationConflicts)
	case available < domain.ScreenCapacitySeconds:
		sa.Status = domain.ScreenPartial
		sa.Message = partiallyAvailableMessage(available)
	default:
		sa.Status = domain.ScreenAvailable
		sa.Message = msgFullyAvailable
	}

	// 6. Резервы понижают статус, но "reservado" от пре-резерва не перезаписывается
	if sa.Status != domain.ScreenReserved && len(reservationConflicts) > 0 {
		sa.Status = partialOr(available, domain.ScreenOccupied)
		sa.Message = activePeriodsMessage(reservationConflicts)
	}

	// 7. Исключительность категории проверяется только для свободных и частичных экранов
	if sa.CanBeRestricted() && verdict.Restricted {
		sa.Status = domain.ScreenRestricted
		sa.Message = fmt.Sprintf(msgCategoryRestricted, screen.Cylinder)
	}

	return sa
}

func partialOr(available int, full domain.ScreenStatus) domain.ScreenStatus {
	if available > 0 {
		return domain.ScreenPartial
	}
	return full
}
