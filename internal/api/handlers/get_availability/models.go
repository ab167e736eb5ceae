package get_availability

import (
	getAvailability "github.com/Angelolozano-7/Prisma-Led/internal/usecase/get_availability"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	StartDate               string `json:"start_date"`
	DurationWeeks           int    `json:"duration_weeks"`
	Category                string `json:"category"`
	ExcludePreReservationID string `json:"exclude_pre_reservation_id,omitempty"`
}

// ScreenAvailabilityResponse статус одного экрана
type ScreenAvailabilityResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	Cylinder         int    `json:"cylinder"`
	Label            string `json:"label"`
	AvailableSeconds int    `json:"available_seconds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest(clientID string) *getAvailability.Request {
	return &getAvailability.Request{
		ClientID:                clientID,
		StartDate:               r.StartDate,
		DurationWeeks:           r.DurationWeeks,
		Category:                r.Category,
		ExcludePreReservationID: r.ExcludePreReservationID,
	}
}

// FromUseCaseResponse ключ - ID экрана
func FromUseCaseResponse(resp *getAvailability.Response) map[string]ScreenAvailabilityResponse {
	result := make(map[string]ScreenAvailabilityResponse, len(resp.Screens))
	for id, s := range resp.Screens {
		result[id] = ScreenAvailabilityResponse{
			Status:           string(s.Status),
			Message:          s.Message,
			Cylinder:         s.Cylinder,
			Label:            s.Label,
			AvailableSeconds: s.AvailableSeconds,
		}
	}
	return result
}
