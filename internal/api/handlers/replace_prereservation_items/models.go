package replace_prereservation_items

import (
	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	replaceItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/replace_prereservation_items"
)

// ReplaceItemsRequest HTTP request model
type ReplaceItemsRequest struct {
	Category string                 `json:"category"`
	Items    []handlers.ItemRequest `json:"items"`
}

// ReplaceItemsResponse HTTP response model
type ReplaceItemsResponse struct {
	ID    string `json:"id"`
	Items int    `json:"items"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceItemsRequest) ToUseCaseRequest(id, clientID string) *replaceItems.Request {
	return &replaceItems.Request{
		ID:       id,
		ClientID: clientID,
		Category: r.Category,
		Items:    handlers.ToItemSpecs(r.Items),
	}
}
