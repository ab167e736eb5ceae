package availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// FindConflicts возвращает периоды бронирований набора, которые включают экран
// и пересекаются с окном. Непустой список означает конфликт даже при свободных секундах.
func FindConflicts(window domain.Period, set BookingSet, screenID string) []domain.Period {
	var conflicts []domain.Period
	for _, booking := range set.Bookings {
		if !containsScreen(set.Items[booking.ID], screenID) {
			continue
		}
		if booking.Period.Overlaps(window) {
			conflicts = append(conflicts, booking.Period)
		}
	}
	return conflicts
}

func containsScreen(items []domain.LineItem, screenID string) bool {
	for _, item := range items {
		if item.ScreenID == screenID {
			return true
		}
	}
	return false
}
