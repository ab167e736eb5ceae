package get_availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request модель запроса доступности экранов
type Request struct {
	ClientID                string // ID клиента из токена
	StartDate               string // YYYY-MM-DD
	DurationWeeks           int    // 1..52
	Category                string
	ExcludePreReservationID string // пре-резерв, который клиент сейчас редактирует (опционально)
}

// Response статусы всех экранов, ключ - ID экрана
type Response struct {
	Window  domain.Period
	Screens map[string]domain.ScreenAvailability
}
