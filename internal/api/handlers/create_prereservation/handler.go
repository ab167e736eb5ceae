package create_prereservation

import (
	"errors"
	"net/http"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	createPreReservation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/create_prereservation"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgInvalidInput       = "Datos incompletos o inválidos"
)

type Handler struct {
	useCase CreatePreReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreatePreReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pre-reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req CreatePreReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pre-reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		if handlers.RespondRejected(w, err) {
			h.logger.Warn("POST /pre-reservations - Rejected: client=%s, error=%v", clientID, err)
			return
		}
		switch {
		case errors.Is(err, createPreReservation.ErrInvalidInput):
			h.logger.Warn("POST /pre-reservations - Invalid input: client=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /pre-reservations - Failed to create pre-reservation: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pre-reservations - Pre-reservation created: id=%s, client=%s, items=%d",
		result.ID, clientID, result.Items)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
