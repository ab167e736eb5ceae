package create_city

import (
	"errors"
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgNameRequired       = "Nombre de ciudad requerido"
	msgNameLength         = "El nombre debe tener entre 3 y 50 caracteres"
	msgCityCreated        = "Ciudad agregada"
	msgCityExists         = "La ciudad ya existe"
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

// Handle POST /api/v1/cities. 201 для новой, 200 для уже существующей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddCity(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNameRequired):
			handlers.RespondBadRequest(w, msgNameRequired)
		case errors.Is(err, catalog.ErrCityNameLength):
			handlers.RespondBadRequest(w, msgNameLength)
		default:
			h.logger.Error("POST /cities - Failed to add city: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Created {
		handlers.RespondJSON(w, http.StatusOK, CreateCityResponse{Message: msgCityExists, Name: result.Name})
		return
	}

	h.logger.Info("POST /cities - City created: name=%s", result.Name)
	handlers.RespondJSON(w, http.StatusCreated, CreateCityResponse{Message: msgCityCreated, Name: result.Name})
}
