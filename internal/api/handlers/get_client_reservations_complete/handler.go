package get_client_reservations_complete

import (
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
)

const msgMissingClientID = "Cliente no autenticado"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/client/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	result, err := h.service.ListCompleteByClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /reservations/client/complete - Failed to list complete reservations: client=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/client/complete - Listed %d complete reservations: client=%s", len(result), clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
