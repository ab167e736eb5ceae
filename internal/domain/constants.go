package domain

// Ограничения емкости экранов
const (
	// ScreenCapacitySeconds суммарное эфирное время, которое можно продать на одном экране
	// в пересекающиеся периоды
	ScreenCapacitySeconds = 60
)

// Ограничения кампаний
const (
	MinCampaignWeeks  = 1
	MaxCampaignWeeks  = 52
	DaysPerWeek       = 7
	MaxCategoryLength = 100
	MinCityNameLength = 3
	MaxCityNameLength = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Группы блокировок для мутирующих операций
const (
	LockPreReservations     = "prereservations"
	LockPreReservationItems = "prereservation_items"
	LockCategories          = "categories"
	LockCities              = "cities"
)
