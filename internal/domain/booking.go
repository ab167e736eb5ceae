package domain

import "time"

// PreReservationStatus represents the status of a pre-reservation
type PreReservationStatus string

const (
	PreReservationPending PreReservationStatus = "pendiente"
)

// BookingKind тип бронирования, по которому считается занятость
type BookingKind string

const (
	KindReservation    BookingKind = "reservation"
	KindPreReservation BookingKind = "pre_reservation"
)

// Reservation represents a firm booking. Read-only for this service.
type Reservation struct {
	ID        string
	ClientID  string
	Period    Period
	CreatedAt time.Time
}

// PreReservation represents a provisional booking that a client can still edit
type PreReservation struct {
	ID               string
	ClientID         string
	Period           Period
	Status           PreReservationStatus
	CreatedAt        time.Time
	NotificationSent bool
}

// IsOwnedBy returns true if the pre-reservation belongs to the client
func (p *PreReservation) IsOwnedBy(clientID string) bool {
	return p.ClientID == clientID
}

// IsPending returns true if the pre-reservation still waits for confirmation
func (p *PreReservation) IsPending() bool {
	return p.Status == PreReservationPending
}

// LineItem одна позиция бронирования: экран + тариф + категория.
// Используется и для резервов, и для пре-резервов.
type LineItem struct {
	ID        string
	BookingID string
	ScreenID  string
	RateCode  string
	Category  Category
}

// Booking общий вид бронирования для расчета занятости
type Booking struct {
	ID       string
	ClientID string
	Period   Period
	Kind     BookingKind
}

// AsBooking приводит резерв к общему виду
func (r *Reservation) AsBooking() Booking {
	return Booking{ID: r.ID, ClientID: r.ClientID, Period: r.Period, Kind: KindReservation}
}

// AsBooking приводит пре-резерв к общему виду
func (p *PreReservation) AsBooking() Booking {
	return Booking{ID: p.ID, ClientID: p.ClientID, Period: p.Period, Kind: KindPreReservation}
}

// ItemSpec позиция, которую клиент предлагает добавить в пре-резерв
type ItemSpec struct {
	ScreenID string
	RateCode string
}
