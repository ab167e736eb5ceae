package list_screens

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

// Handle GET /api/v1/screens
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListScreens(r.Context())
	if err != nil {
		h.logger.Error("GET /screens - Failed to list screens: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /screens - Listed %d screens", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
