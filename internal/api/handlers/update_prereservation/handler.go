package update_prereservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	updatePreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/update_prereservation"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidInput       = "Datos incompletos o inválidos"
	msgNotFound           = "Pre-reserva no encontrada"
)

type Handler struct {
	useCase UpdatePreReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePreReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/pre-reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req UpdatePreReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pre-reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id, clientID))
	if err != nil {
		if handlers.RespondRejected(w, err) {
			h.logger.Warn("PUT /pre-reservations/{id} - Rejected: id=%s, error=%v", id, err)
			return
		}
		switch {
		case errors.Is(err, updatePreReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, updatePreReservation.ErrPreReservationNotFound):
			h.logger.Warn("PUT /pre-reservations/{id} - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /pre-reservations/{id} - Failed to update: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pre-reservations/{id} - Updated: id=%s, items=%d", id, result.Items)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
