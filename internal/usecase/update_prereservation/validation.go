package update_prereservation

import (
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// validateRequest валидирует входные данные и возвращает новый период и категорию
func validateRequest(req *Request) (domain.Period, domain.Category, error) {
	if req.ID == "" {
		return domain.Period{}, "", fmt.Errorf("%w: pre-reservation id is required", ErrInvalidInput)
	}
	if req.StartDate == "" || req.EndDate == "" {
		return domain.Period{}, "", fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	period, err := domain.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return domain.Period{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return domain.Period{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Items) == 0 {
		return domain.Period{}, "", fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.ScreenID == "" || item.RateCode == "" {
			return domain.Period{}, "", fmt.Errorf("%w: item %d needs screen id and rate code", ErrInvalidInput, i)
		}
	}

	return period, category, nil
}
