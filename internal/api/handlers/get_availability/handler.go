package get_availability

import (
	"errors"
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	getAvailability "github.com/Angelolozano-7/Prisma-Led/internal/usecase/get_availability"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidInput       = "Faltan datos o el formato de fecha es inválido (YYYY-MM-DD)"
	msgInvalidDuration    = "La duración debe estar entre 1 y 52 semanas"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("POST /availability - Invalid duration: client=%s, weeks=%d", clientID, req.DurationWeeks)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: client=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability - Failed to resolve availability: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Resolved %d screens: client=%s, window=%s",
		len(result.Screens), clientID, result.Window.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
