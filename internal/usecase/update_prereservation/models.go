package update_prereservation

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request модель запроса на полное обновление пре-резерва: даты и позиции
type Request struct {
	ID        string
	ClientID  string
	StartDate string
	EndDate   string
	Category  string
	Items     []domain.ItemSpec
}

// Response модель ответа с обновленным пре-резервом
type Response struct {
	ID     string
	Period domain.Period
	Items  int
}
