package send_prereservation_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/handlers"
	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	sendConfirmation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/send_prereservation_confirmation"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingClientID    = "Cliente no autenticado"
	msgIncompleteData     = "Datos incompletos"
	msgNotFound           = "Pre-reserva no encontrada"
	msgAlreadySent        = "El correo ya fue enviado para esta pre-reserva"
	msgDeliveryFailed     = "No fue posible enviar el correo"
	msgSent               = "Correo enviado correctamente"
)

type Handler struct {
	useCase SendConfirmationUseCase
	logger  Logger
}

func NewHandler(useCase SendConfirmationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pre-reservations/{id}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req ConfirmationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pre-reservations/{id}/confirmation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id, clientID)); err != nil {
		switch {
		case errors.Is(err, sendConfirmation.ErrIncompleteData):
			handlers.RespondBadRequest(w, msgIncompleteData)
		case errors.Is(err, sendConfirmation.ErrPreReservationNotFound):
			h.logger.Warn("POST /pre-reservations/{id}/confirmation - Not found: id=%s, client=%s", id, clientID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, sendConfirmation.ErrAlreadySent):
			handlers.RespondConflict(w, msgAlreadySent)
		case errors.Is(err, sendConfirmation.ErrDelivery):
			h.logger.Error("POST /pre-reservations/{id}/confirmation - Delivery failed: id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeliveryFailed)
		default:
			h.logger.Error("POST /pre-reservations/{id}/confirmation - Failed to send: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pre-reservations/{id}/confirmation - Sent: id=%s, client=%s", id, clientID)
	handlers.RespondMessage(w, http.StatusOK, msgSent)
}
