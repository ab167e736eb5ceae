package send_prereservation_confirmation

import (
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	sendConfirmation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/send_prereservation_confirmation"
)

// ConfirmationRequest HTTP request model: данные письма, собранные клиентом
type ConfirmationRequest struct {
	Recipient   string               `json:"email"`
	CompanyName string               `json:"company_name"`
	TaxID       string               `json:"tax_id"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Category    string               `json:"category"`
	Weeks       int                  `json:"duration_weeks"`
	Screens     []ConfirmationScreen `json:"screens"`
	Subtotal    float64              `json:"subtotal"`
	VAT         float64              `json:"vat"`
	Total       float64              `json:"total"`
}

// ConfirmationScreen строка экрана в письме
type ConfirmationScreen struct {
	Cylinder   int     `json:"cylinder"`
	Label      string  `json:"label"`
	WeeklyBase int64   `json:"weekly_base"`
	Price      int64   `json:"price"`
	Discount   float64 `json:"discount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmationRequest) ToUseCaseRequest(id, clientID string) *sendConfirmation.Request {
	screens := make([]domain.ConfirmationScreen, 0, len(r.Screens))
	for _, s := range r.Screens {
		screens = append(screens, domain.ConfirmationScreen{
			Cylinder:   s.Cylinder,
			Label:      s.Label,
			WeeklyBase: s.WeeklyBase,
			Price:      s.Price,
			Discount:   s.Discount,
		})
	}

	return &sendConfirmation.Request{
		ID:       id,
		ClientID: clientID,
		Notice: domain.ConfirmationNotice{
			Recipient:   r.Recipient,
			CompanyName: r.CompanyName,
			TaxID:       r.TaxID,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Category:    r.Category,
			Weeks:       r.Weeks,
			Screens:     screens,
			Subtotal:    r.Subtotal,
			VAT:         r.VAT,
			Total:       r.Total,
		},
	}
}
