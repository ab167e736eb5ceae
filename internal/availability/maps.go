package availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// RateMap код тарифа -> длительность ролика в секундах
type RateMap map[string]int

// ScreenMap ID экрана -> номер цилиндра
type ScreenMap map[string]int

// BuildRateMap строит справочник длительностей тарифов
func BuildRateMap(rates []domain.Rate) RateMap {
	m := make(RateMap, len(rates))
	for _, r := range rates {
		m[r.Code] = r.DurationSeconds
	}
	return m
}

// BuildScreenMap строит справочник цилиндров экранов
func BuildScreenMap(screens []domain.Screen) ScreenMap {
	m := make(ScreenMap, len(screens))
	for _, s := range screens {
		m[s.ID] = s.Cylinder
	}
	return m
}

// Seconds возвращает длительность тарифа. Неизвестный тариф занимает 0 секунд.
func (m RateMap) Seconds(code string) int {
	return m[code]
}

// Cylinder возвращает цилиндр экрана
func (m ScreenMap) Cylinder(screenID string) (int, bool) {
	c, ok := m[screenID]
	return c, ok
}
