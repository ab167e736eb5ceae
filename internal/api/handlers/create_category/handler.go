package create_category

import (
	"errors"
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgNameRequired       = "El campo 'nombre' es obligatorio"
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

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.AddCategory(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNameRequired):
			handlers.RespondBadRequest(w, msgNameRequired)
		default:
			h.logger.Error("POST /categories - Failed to add category: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created: id=%s", category.ID)
	handlers.RespondJSON(w, http.StatusCreated, category)
}
