package delete_prereservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations"
)

const (
	msgMissingClientID = "Cliente no autenticado"
	msgNotFound        = "Pre-reserva no encontrada"
	msgDeleted         = "Pre-reserva eliminada"
)

type Handler struct {
	service PreReservationService
	logger  Logger
}

func NewHandler(service PreReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/pre-reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	if err := h.service.Delete(r.Context(), id, clientID); err != nil {
		switch {
		case errors.Is(err, prereservations.ErrPreReservationNotFound):
			h.logger.Warn("DELETE /pre-reservations/{id} - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /pre-reservations/{id} - Failed to delete: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /pre-reservations/{id} - Deleted: id=%s, client=%s", id, clientID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
