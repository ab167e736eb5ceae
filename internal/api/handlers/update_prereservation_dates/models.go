package update_prereservation_dates

import "github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"

// UpdateDatesRequest HTTP request model
type UpdateDatesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDatesRequest) ToServiceRequest(id, clientID string) *models.UpdateDatesRequest {
	return &models.UpdateDatesRequest{
		ID:        id,
		ClientID:  clientID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
