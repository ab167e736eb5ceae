package replace_prereservation_items

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резерв не найден или принадлежит другому клиенту
	ErrPreReservationNotFound = errors.New("replace_prereservation_items: pre-reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("replace_prereservation_items: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("replace_prereservation_items: internal error")
)
