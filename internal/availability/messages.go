package availability

import (
	"fmt"
	"strings"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

const (
	msgFullyAvailable         = "Pantalla completamente disponible"
	msgPartiallyAvailable     = "Disponible parcialmente (%d segundos libres)"
	msgActivePeriods          = "Pauta activa periodo: "
	msgCategoryRestricted     = "Conflicto de categoría con otra pauta en cilindro %d"
	msgPreReservationNotFound = "Pre-reserva no encontrada"
	msgCapacityExceeded       = "La pantalla %s excede el límite de %d segundos"
	msgCategoryConflict       = "Conflicto de categoría en cilindro %d"
)

func activePeriodsMessage(periods []domain.Period) string {
	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = p.String()
	}
	return msgActivePeriods + strings.Join(parts, ", ")
}

func partiallyAvailableMessage(seconds int) string {
	return fmt.Sprintf(msgPartiallyAvailable, seconds)
}
