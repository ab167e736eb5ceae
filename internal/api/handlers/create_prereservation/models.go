package create_prereservation

import (
	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	createPreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/create_prereservation"
)

// CreatePreReservationRequest HTTP request model
type CreatePreReservationRequest struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Category  string                 `json:"category"`
	Items     []handlers.ItemRequest `json:"items"`
}

// PreReservationCreatedResponse HTTP response model
type PreReservationCreatedResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Items     int    `json:"items"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePreReservationRequest) ToUseCaseRequest(clientID string) *createPreReservation.Request {
	return &createPreReservation.Request{
		ClientID:  clientID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Category:  r.Category,
		Items:     handlers.ToItemSpecs(r.Items),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPreReservation.Response) *PreReservationCreatedResponse {
	return &PreReservationCreatedResponse{
		ID:        resp.ID,
		StartDate: resp.Period.StartString(),
		EndDate:   resp.Period.EndString(),
		Items:     resp.Items,
	}
}
