package get_availability

import (
	"errors"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// buildQuery валидирует запрос и строит параметры расчета
func buildQuery(req *Request) (availability.Query, error) {
	if req.ClientID == "" {
		return availability.Query{}, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return availability.Query{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	window, err := domain.PeriodFromWeeks(start, req.DurationWeeks)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDuration) {
			return availability.Query{}, fmt.Errorf("%w: %d weeks", ErrInvalidDuration, req.DurationWeeks)
		}
		return availability.Query{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return availability.Query{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return availability.Query{
		Window:                  window,
		Category:                category,
		ClientID:                req.ClientID,
		ExcludePreReservationID: req.ExcludePreReservationID,
	}, nil
}
