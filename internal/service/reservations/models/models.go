package models

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// ReservationResponse резерв в ответе API
type ReservationResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ScreenLine экран резерва с секундами и недельной ценой тарифа
type ScreenLine struct {
	ID       string `json:"id"`
	Cylinder int    `json:"cylinder"`
	Label    string `json:"label"`
	Seconds  int    `json:"seconds"`
	Price    int64  `json:"price"`
}

// CompleteReservationResponse резерв вместе с экранами и суммой
type CompleteReservationResponse struct {
	ID        string       `json:"id"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Category  string       `json:"category"`
	Weeks     int          `json:"weeks"`
	Screens   []ScreenLine `json:"screens"`
	Subtotal  int64        `json:"subtotal"`
}

// FromDomainReservation конвертирует резерв в ответ API
func FromDomainReservation(r domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:        r.ID,
		ClientID:  r.ClientID,
		StartDate: r.Period.StartString(),
		EndDate:   r.Period.EndString(),
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(domain.DateFormat)
	}
	return resp
}

// FromDomainReservationList конвертирует список резервов в ответ API
func FromDomainReservationList(list []domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}
