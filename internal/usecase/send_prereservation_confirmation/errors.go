package send_prereservation_confirmation

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резерв не найден или принадлежит другому клиенту
	ErrPreReservationNotFound = errors.New("send_prereservation_confirmation: pre-reservation not found")

	// ErrAlreadySent возвращается при повторной отправке письма
	ErrAlreadySent = errors.New("send_prereservation_confirmation: confirmation already sent")

	// ErrIncompleteData возвращается, если нет адресата или экранов
	ErrIncompleteData = errors.New("send_prereservation_confirmation: incomplete data")

	// ErrDelivery возвращается, если письмо не удалось передать на доставку
	ErrDelivery = errors.New("send_prereservation_confirmation: delivery failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_prereservation_confirmation: internal error")
)
