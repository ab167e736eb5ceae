package storage

import "errors"

// Ошибки, общие для всех реализаций хранилища
var (
	// ErrPreReservationNotFound возвращается, когда пре-резерв не найден
	ErrPreReservationNotFound = errors.New("storage: pre-reservation not found")

	// ErrMalformedRecord возвращается, когда запись хранилища не удалось разобрать
	ErrMalformedRecord = errors.New("storage: malformed record")
)
