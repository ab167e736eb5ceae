package models

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// ScreenResponse экран в ответе API
type ScreenResponse struct {
	ID       string `json:"id"`
	Cylinder int    `json:"cylinder"`
	Label    string `json:"label"`
}

// RateResponse тариф в ответе API
type RateResponse struct {
	Code            string `json:"code"`
	DurationSeconds int    `json:"duration_seconds"`
	WeeklyPrice     int64  `json:"weekly_price"`
}

// CategoryResponse категория в ответе API
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddCityResponse результат добавления города
type AddCityResponse struct {
	Name    string `json:"name"`
	Created bool   `json:"created"` // false, если город уже был в справочнике
}

// FromDomainScreens конвертирует экраны в ответ API
func FromDomainScreens(screens []domain.Screen) []ScreenResponse {
	result := make([]ScreenResponse, 0, len(screens))
	for _, s := range screens {
		result = append(result, ScreenResponse{ID: s.ID, Cylinder: s.Cylinder, Label: s.Label})
	}
	return result
}

// FromDomainRates конвертирует тарифы в ответ API
func FromDomainRates(rates []domain.Rate) []RateResponse {
	result := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, RateResponse{Code: r.Code, DurationSeconds: r.DurationSeconds, WeeklyPrice: r.WeeklyPrice})
	}
	return result
}

// FromDomainCategory конвертирует категорию в ответ API
func FromDomainCategory(c domain.CategoryRecord) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// FromDomainCategories конвертирует список категорий в ответ API
func FromDomainCategories(categories []domain.CategoryRecord) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, FromDomainCategory(c))
	}
	return result
}
