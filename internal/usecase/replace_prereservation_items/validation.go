package replace_prereservation_items

import (
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

func validateRequest(req *Request) (domain.Category, error) {
	if req.ID == "" {
		return "", fmt.Errorf("%w: pre-reservation id is required", ErrInvalidInput)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Items) == 0 {
		return "", fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.ScreenID == "" || item.RateCode == "" {
			return "", fmt.Errorf("%w: item %d needs screen id and rate code", ErrInvalidInput, i)
		}
	}

	return category, nil
}
