package send_prereservation_confirmation

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// Request запрос на отправку письма-подтверждения
type Request struct {
	ID       string
	ClientID string
	Notice   domain.ConfirmationNotice
}
