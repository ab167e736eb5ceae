package get_prereservation_detail

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

// Handle GET /api/v1/pre-reservations/{id}/detail
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	detail, err := h.service.GetDetail(r.Context(), id, clientID)
	if err != nil {
		switch {
		case errors.Is(err, prereservations.ErrPreReservationNotFound):
			h.logger.Warn("GET /pre-reservations/{id}/detail - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /pre-reservations/{id}/detail - Failed to get detail: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pre-reservations/{id}/detail - Detail retrieved: id=%s, screens=%d", id, len(detail.Screens))
	handlers.RespondJSON(w, http.StatusOK, detail)
}
