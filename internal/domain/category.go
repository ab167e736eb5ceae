package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Category рекламная категория клиента. Набор категорий открытый и пополняется
// во время работы, поэтому это строка, проверяемая на входе, а не перечисление.
type Category string

// ParseCategory нормализует и проверяет категорию из внешнего ввода
func ParseCategory(raw string) (Category, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCategory)
	}
	if utf8.RuneCountInString(value) > MaxCategoryLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidCategory, MaxCategoryLength)
	}
	return Category(value), nil
}

func (c Category) String() string {
	return string(c)
}
