package replace_prereservation_items

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request запрос на замену позиций пре-резерва
type Request struct {
	ID       string
	ClientID string
	Category string
	Items    []domain.ItemSpec
}

// Response результат замены позиций
type Response struct {
	ID    string
	Items int
}
