package validate_prereservation_items

import (
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// buildInput валидирует запрос и строит вход валидатора
func buildInput(req *Request) (availability.ValidationInput, error) {
	if req.PreReservationID == "" {
		return availability.ValidationInput{}, fmt.Errorf("%w: pre-reservation id is required", ErrInvalidInput)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return availability.ValidationInput{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Items) == 0 {
		return availability.ValidationInput{}, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.ScreenID == "" || item.RateCode == "" {
			return availability.ValidationInput{}, fmt.Errorf("%w: item %d needs screen id and rate code", ErrInvalidInput, i)
		}
	}

	return availability.ValidationInput{
		PreReservationID: req.PreReservationID,
		Items:            req.Items,
		Category:         category,
		ClientID:         req.ClientID,
	}, nil
}
