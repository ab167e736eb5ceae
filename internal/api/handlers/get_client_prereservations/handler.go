package get_client_prereservations

import (
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
)

const msgMissingClientID = "Cliente no autenticado"

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

// Handle GET /api/v1/pre-reservations/client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	result, err := h.service.ListByClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /pre-reservations/client - Failed to list pre-reservations: client=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pre-reservations/client - Listed %d pre-reservations: client=%s", len(result), clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
