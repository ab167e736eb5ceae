package domain

// ScreenStatus статус экрана в ответе на запрос доступности
type ScreenStatus string

const (
	ScreenAvailable  ScreenStatus = "disponible"  // свободен полностью
	ScreenPartial    ScreenStatus = "parcial"     // часть секунд занята
	ScreenReserved   ScreenStatus = "reservado"   // выкуплен пре-резервом
	ScreenOccupied   ScreenStatus = "ocupado"     // выкуплен резервом
	ScreenRestricted ScreenStatus = "restringido" // конфликт категории на цилиндре
)

// ScreenAvailability represents the availability of one screen for a requested period
type ScreenAvailability struct {
	ScreenID         string
	Status           ScreenStatus
	Message          string
	Cylinder         int
	Label            string
	AvailableSeconds int
}

// IsFull returns true if no seconds are left on the screen
func (a *ScreenAvailability) IsFull() bool {
	return a.AvailableSeconds <= 0
}

// IsFullyAvailable returns true if the whole capacity is free
func (a *ScreenAvailability) IsFullyAvailable() bool {
	return a.AvailableSeconds == ScreenCapacitySeconds
}

// CanBeRestricted returns true if the category rule may still override the status
func (a *ScreenAvailability) CanBeRestricted() bool {
	return a.Status == ScreenAvailable || a.Status == ScreenPartial
}
