package list_rates

import (
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRates(r.Context())
	if err != nil {
		h.logger.Error("GET /rates - Failed to list rates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rates - Listed %d rates", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
