package replace_prereservation_items

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	replaceItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/replace_prereservation_items"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidInput       = "Datos incompletos o inválidos"
	msgNotFound           = "Pre-reserva no encontrada"
)

type Handler struct {
	useCase ReplaceItemsUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceItemsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/pre-reservations/{id}/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req ReplaceItemsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pre-reservations/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id, clientID))
	if err != nil {
		if handlers.RespondRejected(w, err) {
			h.logger.Warn("PUT /pre-reservations/{id}/items - Rejected: id=%s, error=%v", id, err)
			return
		}
		switch {
		case errors.Is(err, replaceItems.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, replaceItems.ErrPreReservationNotFound):
			h.logger.Warn("PUT /pre-reservations/{id}/items - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /pre-reservations/{id}/items - Failed to replace items: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pre-reservations/{id}/items - Items replaced: id=%s, items=%d", id, result.Items)
	handlers.RespondJSON(w, http.StatusOK, ReplaceItemsResponse{ID: result.ID, Items: result.Items})
}
