package handlers

import (
	"errors"
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// ItemRequest позиция пре-резерва в теле запроса
type ItemRequest struct {
	ScreenID string `json:"screen_id"`
	RateCode string `json:"rate_code"`
}

// ToItemSpecs конвертирует позиции запроса в доменные
func ToItemSpecs(items []ItemRequest) []domain.ItemSpec {
	specs := make([]domain.ItemSpec, 0, len(items))
	for _, it := range items {
		specs = append(specs, domain.ItemSpec{ScreenID: it.ScreenID, RateCode: it.RateCode})
	}
	return specs
}

// RespondRejected отвечает на отказ валидатора позиций: 404 для неизвестного пре-резерва,
// 409 для превышения емкости и конфликта категории. Возвращает false, если err не отказ.
func RespondRejected(w http.ResponseWriter, err error) bool {
	var rejected *availability.RejectedError
	if !errors.As(err, &rejected) {
		return false
	}
	if rejected.Kind == availability.RejectNotFound {
		RespondNotFound(w, rejected.Reason)
		return true
	}
	RespondConflict(w, rejected.Reason)
	return true
}
