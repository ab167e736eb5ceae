package prereservations

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резерв не найден или принадлежит другому клиенту
	ErrPreReservationNotFound = errors.New("prereservations: pre-reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prereservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("prereservations: internal error")
)
