package ids

import (
	"strings"

	"github.com/google/uuid"
)

// ShortIDLength длина коротких идентификаторов записей
const ShortIDLength = 8

// NewShortID возвращает идентификатор из 8 шестнадцатеричных символов
func NewShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:ShortIDLength]
}

// Generator источник идентификаторов, подменяемый в тестах
type Generator interface {
	NewID() string
}

// ShortGenerator генератор коротких идентификаторов
type ShortGenerator struct{}

// NewID возвращает новый короткий идентификатор
func (ShortGenerator) NewID() string {
	return NewShortID()
}
