package validate_prereservation_items

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	validateItems "github.com/Angelolozano-7/Prisma-Led/internal/usecase/validate_prereservation_items"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidInput       = "Datos incompletos o inválidos"
)

type Handler struct {
	useCase ValidateItemsUseCase
	logger  Logger
}

func NewHandler(useCase ValidateItemsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pre-reservations/{id}/items/validate.
// Отказ валидатора - это ответ 200 с valid=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req ValidateItemsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pre-reservations/{id}/items/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id, clientID))
	if err != nil {
		switch {
		case errors.Is(err, validateItems.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /pre-reservations/{id}/items/validate - Failed to validate: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateItemsResponse{Valid: result.Valid, Error: result.Error})
}
