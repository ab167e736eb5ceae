package update_prereservation

import (
	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	updatePreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/update_prereservation"
)

// UpdatePreReservationRequest HTTP request model
type UpdatePreReservationRequest struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Category  string                 `json:"category"`
	Items     []handlers.ItemRequest `json:"items"`
}

// PreReservationUpdatedResponse HTTP response model
type PreReservationUpdatedResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Items     int    `json:"items"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdatePreReservationRequest) ToUseCaseRequest(id, clientID string) *updatePreReservation.Request {
	return &updatePreReservation.Request{
		ID:        id,
		ClientID:  clientID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Category:  r.Category,
		Items:     handlers.ToItemSpecs(r.Items),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updatePreReservation.Response) *PreReservationUpdatedResponse {
	return &PreReservationUpdatedResponse{
		ID:        resp.ID,
		StartDate: resp.Period.StartString(),
		EndDate:   resp.Period.EndString(),
		Items:     resp.Items,
	}
}
