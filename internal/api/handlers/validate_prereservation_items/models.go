package validate_prereservation_items

import (
	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	validateItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/validate_prereservation_items"
)

// ValidateItemsRequest HTTP request model
type ValidateItemsRequest struct {
	Category string                 `json:"category"`
	Items    []handlers.ItemRequest `json:"items"`
}

// ValidateItemsResponse итог проверки
type ValidateItemsResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateItemsRequest) ToUseCaseRequest(id, clientID string) *validateItems.Request {
	return &validateItems.Request{
		PreReservationID: id,
		ClientID:         clientID,
		Category:         r.Category,
		Items:            handlers.ToItemSpecs(r.Items),
	}
}
