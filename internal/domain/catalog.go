package domain

// Screen represents an addressable LED screen mounted on a cylinder
type Screen struct {
	ID       string
	Cylinder int    // Номер цилиндра; на одном цилиндре несколько экранов
	Label    string // Обозначение экрана на цилиндре (например, "A")
}

// Rate represents an airtime package: seconds per loop and weekly price
type Rate struct {
	Code            string
	DurationSeconds int
	WeeklyPrice     int64
}

// CategoryRecord строка справочника категорий
type CategoryRecord struct {
	ID   string
	Name string
}

// City строка справочника городов
type City struct {
	Name string
}
