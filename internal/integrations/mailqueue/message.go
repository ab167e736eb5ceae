package mailqueue

import (
	"encoding/json"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// message формат сообщения очереди писем-подтверждений
type message struct {
	PreReservationID string          `json:"pre_reservation_id"`
	Recipient        string          `json:"recipient"`
	CompanyName      string          `json:"company_name"`
	TaxID            string          `json:"tax_id"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	Category         string          `json:"category"`
	Weeks            int             `json:"weeks"`
	Screens          []messageScreen `json:"screens"`
	Subtotal         float64         `json:"subtotal"`
	VAT              float64         `json:"vat"`
	Total            float64         `json:"total"`
}

type messageScreen struct {
	Cylinder   int     `json:"cylinder"`
	Label      string  `json:"label"`
	WeeklyBase int64   `json:"weekly_base"`
	Price      int64   `json:"price"`
	Discount   float64 `json:"discount"`
}

func encodeNotice(n domain.ConfirmationNotice) ([]byte, error) {
	msg := message{
		PreReservationID: n.PreReservationID,
		Recipient:        n.Recipient,
		CompanyName:      n.CompanyName,
		TaxID:            n.TaxID,
		StartDate:        n.StartDate,
		EndDate:          n.EndDate,
		Category:         n.Category,
		Weeks:            n.Weeks,
		Screens:          make([]messageScreen, len(n.Screens)),
		Subtotal:         n.Subtotal,
		VAT:              n.VAT,
		Total:            n.Total,
	}
	for i, s := range n.Screens {
		msg.Screens[i] = messageScreen(s)
	}
	return json.Marshal(msg)
}

func decodeNotice(body []byte) (domain.ConfirmationNotice, error) {
	var msg message
	if err := json.Unmarshal(body, &msg); err != nil {
		return domain.ConfirmationNotice{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if msg.PreReservationID == "" || msg.Recipient == "" {
		return domain.ConfirmationNotice{}, fmt.Errorf("%w: pre_reservation_id and recipient are required", ErrDecode)
	}

	n := domain.ConfirmationNotice{
		PreReservationID: msg.PreReservationID,
		Recipient:        msg.Recipient,
		CompanyName:      msg.CompanyName,
		TaxID:            msg.TaxID,
		StartDate:        msg.StartDate,
		EndDate:          msg.EndDate,
		Category:         msg.Category,
		Weeks:            msg.Weeks,
		Screens:          make([]domain.ConfirmationScreen, len(msg.Screens)),
		Subtotal:         msg.Subtotal,
		VAT:              msg.VAT,
		Total:            msg.Total,
	}
	for i, s := range msg.Screens {
		n.Screens[i] = domain.ConfirmationScreen(s)
	}
	return n, nil
}
