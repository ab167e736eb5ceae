package domain

// ConfirmationNotice данные письма-подтверждения пре-резерва
type ConfirmationNotice struct {
	PreReservationID string
	Recipient        string
	CompanyName      string
	TaxID            string
	StartDate        string
	EndDate          string
	Category         string
	Weeks            int
	Screens          []ConfirmationScreen
	Subtotal         float64
	VAT              float64
	Total            float64
}

// ConfirmationScreen строка письма по одному экрану
type ConfirmationScreen struct {
	Cylinder   int
	Label      string
	WeeklyBase int64   // цена за неделю без скидки
	Price      int64   // итоговая цена за весь период
	Discount   float64 // доля скидки, 0.1 = 10%
}

// SubtotalWithoutDiscount стоимость экрана за все недели без скидки
func (s ConfirmationScreen) SubtotalWithoutDiscount(weeks int) int64 {
	return s.WeeklyBase * int64(weeks)
}

// Saving сумма, сэкономленная за счет скидки
func (s ConfirmationScreen) Saving(weeks int) int64 {
	return s.SubtotalWithoutDiscount(weeks) - s.Price
}
