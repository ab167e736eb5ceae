package availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// OccupiedSeconds суммирует секунды по экранам для всех бронирований набора,
// пересекающихся с окном. Непересекающиеся бронирования не учитываются.
func OccupiedSeconds(window domain.Period, set BookingSet, rates RateMap) map[string]int {
	occupied := make(map[string]int)
	for _, booking := range set.Bookings {
		if !booking.Period.Overlaps(window) {
			continue
		}
		for _, item := range set.Items[booking.ID] {
			occupied[item.ScreenID] += rates.Seconds(item.RateCode)
		}
	}
	return occupied
}

// Occupancy занятость экранов в окне по резервам и пре-резервам вместе.
// Общая основа для расчета доступности и для проверки позиций пре-резерва.
type Occupancy struct {
	window          domain.Period
	screens         ScreenMap
	rates           RateMap
	reservations    BookingSet
	preReservations BookingSet
	used            map[string]int
}

// NewOccupancy считает занятость среза в окне
func NewOccupancy(snap *Snapshot, window domain.Period) *Occupancy {
	rates := BuildRateMap(snap.Rates)

	used := OccupiedSeconds(window, snap.Reservations, rates)
	for screenID, seconds := range OccupiedSeconds(window, snap.PreReservations, rates) {
		used[screenID] += seconds
	}

	return &Occupancy{
		window:          window,
		screens:         BuildScreenMap(snap.Screens),
		rates:           rates,
		reservations:    snap.Reservations,
		preReservations: snap.PreReservations,
		used:            used,
	}
}

// Window окно, для которого посчитана занятость
func (o *Occupancy) Window() domain.Period {
	return o.window
}

// Rates справочник тарифов среза
func (o *Occupancy) Rates() RateMap {
	return o.rates
}

// Screens справочник цилиндров среза
func (o *Occupancy) Screens() ScreenMap {
	return o.screens
}

// UsedSeconds занятые секунды экрана
func (o *Occupancy) UsedSeconds(screenID string) int {
	return o.used[screenID]
}

// AvailableSeconds свободные секунды экрана, никогда не отрицательные
func (o *Occupancy) AvailableSeconds(screenID string) int {
	return remaining(o.used[screenID])
}

// CategoryConflict ищет чужое бронирование той же категории, пересекающееся с окном
// и занимающее экран на одном из цилиндров. Сначала просматриваются резервы, затем
// пре-резервы, в порядке хранилища; возвращается цилиндр первого совпадения.
func (o *Occupancy) CategoryConflict(category domain.Category, clientID string, cylinders map[int]struct{}) (int, bool) {
	if len(cylinders) == 0 {
		return 0, false
	}
	for _, set := range []BookingSet{o.reservations, o.preReservations} {
		if cylinder, ok := o.categoryConflictIn(set, category, clientID, cylinders); ok {
			return cylinder, true
		}
	}
	return 0, false
}

func (o *Occupancy) categoryConflictIn(set BookingSet, category domain.Category, clientID string, cylinders map[int]struct{}) (int, bool) {
	for _, booking := range set.Bookings {
		if booking.ClientID == clientID || !booking.Period.Overlaps(o.window) {
			continue
		}
		for _, item := range set.Items[booking.ID] {
			if item.Category != category {
				continue
			}
			cylinder, known := o.screens.Cylinder(item.ScreenID)
			if !known {
				continue
			}
			if _, shared := cylinders[cylinder]; shared {
				return cylinder, true
			}
		}
	}
	return 0, false
}

func remaining(used int) int {
	free := domain.ScreenCapacitySeconds - used
	if free < 0 {
		return 0
	}
	return free
}
