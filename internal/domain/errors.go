package domain

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("domain: period end is before start")

	// ErrInvalidDuration возвращается при длительности кампании вне диапазона 1..52 недель
	ErrInvalidDuration = errors.New("domain: campaign duration out of range")

	// ErrInvalidCategory возвращается при пустой или слишком длинной категории
	ErrInvalidCategory = errors.New("domain: invalid category")
)
