package create_prereservation

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request модель запроса на создание пре-резерва с позициями
type Request struct {
	ClientID  string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Category  string // одна категория на все позиции
	Items     []domain.ItemSpec
}

// Response модель ответа с созданным пре-резервом
type Response struct {
	ID     string
	Period domain.Period
	Items  int
}
