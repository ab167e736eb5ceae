package validate_prereservation_items

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request модель запроса проверки позиций пре-резерва
type Request struct {
	PreReservationID string
	ClientID         string
	Category         string
	Items            []domain.ItemSpec
}

// Response итог проверки. Error пустой, если позиции допустимы.
type Response struct {
	Valid bool
	Error string
}
