package availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// BookingSet заголовки бронирований одного типа и их позиции, сгруппированные по ID бронирования.
// Порядок Bookings совпадает с порядком хранилища и определяет порядок поиска конфликтов.
type BookingSet struct {
	Bookings []domain.Booking
	Items    map[string][]domain.LineItem
}

// NewBookingSet группирует позиции по ID бронирования, сохраняя их порядок
func NewBookingSet(bookings []domain.Booking, items []domain.LineItem) BookingSet {
	grouped := make(map[string][]domain.LineItem, len(bookings))
	for _, item := range items {
		grouped[item.BookingID] = append(grouped[item.BookingID], item)
	}
	return BookingSet{Bookings: bookings, Items: grouped}
}

// Without возвращает копию набора без одного бронирования и его позиций
func (s BookingSet) Without(bookingID string) BookingSet {
	bookings := make([]domain.Booking, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		if b.ID != bookingID {
			bookings = append(bookings, b)
		}
	}

	items := make(map[string][]domain.LineItem, len(s.Items))
	for id, list := range s.Items {
		if id != bookingID {
			items[id] = list
		}
	}

	return BookingSet{Bookings: bookings, Items: items}
}

// Find ищет бронирование по ID
func (s BookingSet) Find(bookingID string) (domain.Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == bookingID {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Snapshot согласованный срез данных хранилища, по которому считается доступность
type Snapshot struct {
	Screens         []domain.Screen
	Rates           []domain.Rate
	Reservations    BookingSet
	PreReservations BookingSet
}

// NewSnapshot собирает срез из сущностей хранилища
func NewSnapshot(
	screens []domain.Screen,
	rates []domain.Rate,
	reservations []domain.Reservation,
	reservationItems []domain.LineItem,
	preReservations []domain.PreReservation,
	preReservationItems []domain.LineItem,
) *Snapshot {
	res := make([]domain.Booking, len(reservations))
	for i := range reservations {
		res[i] = reservations[i].AsBooking()
	}

	pre := make([]domain.Booking, len(preReservations))
	for i := range preReservations {
		pre[i] = preReservations[i].AsBooking()
	}

	return &Snapshot{
		Screens:         screens,
		Rates:           rates,
		Reservations:    NewBookingSet(res, reservationItems),
		PreReservations: NewBookingSet(pre, preReservationItems),
	}
}

// WithoutPreReservation исключает пре-резерв вместе с его позициями.
// Остальные бронирования не меняются.
func (s *Snapshot) WithoutPreReservation(id string) *Snapshot {
	if id == "" {
		return s
	}
	return &Snapshot{
		Screens:         s.Screens,
		Rates:           s.Rates,
		Reservations:    s.Reservations,
		PreReservations: s.PreReservations.Without(id),
	}
}
