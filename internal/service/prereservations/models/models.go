package models

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// PreReservationResponse пре-резерв в ответе API
type PreReservationResponse struct {
	ID               string `json:"id"`
	ClientID         string `json:"client_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at,omitempty"`
	NotificationSent bool   `json:"notification_sent"`
}

// ScreenLine экран пре-резерва с секундами и недельной ценой тарифа.
// Неизвестный экран или тариф дают нулевые значения.
type ScreenLine struct {
	ID       string `json:"id"`
	Cylinder int    `json:"cylinder"`
	Label    string `json:"label"`
	RateCode string `json:"rate_code"`
	Seconds  int    `json:"seconds"`
	Price    int64  `json:"price"`
}

// DetailResponse детализация пре-резерва
type DetailResponse struct {
	ID        string       `json:"id"`
	CreatedAt string       `json:"created_at,omitempty"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Weeks     int          `json:"weeks"`
	Category  string       `json:"category"`
	Screens   []ScreenLine `json:"screens"`
}

// UpdateDatesRequest запрос на изменение дат пре-резерва
type UpdateDatesRequest struct {
	ID        string
	ClientID  string
	StartDate string
	EndDate   string
}

// FromDomainPreReservation конвертирует пре-резерв в ответ API
func FromDomainPreReservation(p domain.PreReservation) PreReservationResponse {
	resp := PreReservationResponse{
		ID:               p.ID,
		ClientID:         p.ClientID,
		StartDate:        p.Period.StartString(),
		EndDate:          p.Period.EndString(),
		Status:           string(p.Status),
		NotificationSent: p.NotificationSent,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(domain.DateFormat)
	}
	return resp
}

// FromDomainPreReservationList конвертирует список пре-резервов в ответ API
func FromDomainPreReservationList(list []domain.PreReservation) []PreReservationResponse {
	result := make([]PreReservationResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainPreReservation(p))
	}
	return result
}
