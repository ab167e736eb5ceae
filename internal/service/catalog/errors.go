package catalog

import "errors"

var (
	// ErrNameRequired возвращается при пустом названии категории или города
	ErrNameRequired = errors.New("catalog: name is required")

	// ErrCityNameLength возвращается, когда длина названия города вне 3..50 символов
	ErrCityNameLength = errors.New("catalog: city name length out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
