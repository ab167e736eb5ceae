package update_prereservation_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidDates       = "Fechas inválidas (YYYY-MM-DD, fin no anterior al inicio)"
	msgNotFound           = "Pre-reserva no encontrada"
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

// Handle PUT /api/v1/pre-reservations/{id}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req UpdateDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pre-reservations/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDates(r.Context(), req.ToServiceRequest(id, clientID))
	if err != nil {
		if handlers.RespondRejected(w, err) {
			h.logger.Warn("PUT /pre-reservations/{id}/dates - Rejected: id=%s, error=%v", id, err)
			return
		}
		switch {
		case errors.Is(err, prereservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDates)
		case errors.Is(err, prereservations.ErrPreReservationNotFound):
			h.logger.Warn("PUT /pre-reservations/{id}/dates - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /pre-reservations/{id}/dates - Failed to update dates: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pre-reservations/{id}/dates - Dates updated: id=%s, start=%s, end=%s",
		id, result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
