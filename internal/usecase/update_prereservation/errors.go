package update_prereservation

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резерв не найден или принадлежит другому клиенту
	ErrPreReservationNotFound = errors.New("update_prereservation: pre-reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_prereservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_prereservation: internal error")
)
