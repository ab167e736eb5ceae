package availability

import "github.com/Angelolozano-7/Prisma-Led/internal/domain"

// ScreenCheck проверка одного экрана
type ScreenCheck struct {
	ScreenID        string
	ProposedSeconds int // секунды, которые предлагается добавить (0 при запросе доступности)
	Category        domain.Category
	ClientID        string
}

// ConflictVerdict результат проверки экрана по правилам емкости и категории
type ConflictVerdict struct {
	ScreenID         string
	Cylinder         int
	KnownScreen      bool
	UsedSeconds      int
	AvailableSeconds int
	ExceedsCapacity  bool // занято + предложено > 60
	Restricted       bool // на цилиндре есть чужое бронирование той же категории
}

// EvaluateScreenConflict применяет к одному экрану ограничение в 60 секунд и правило
// исключительности категории на цилиндре
func EvaluateScreenConflict(occ *Occupancy, check ScreenCheck) ConflictVerdict {
	used := occ.UsedSeconds(check.ScreenID)
	verdict := ConflictVerdict{
		ScreenID:         check.ScreenID,
		UsedSeconds:      used,
		AvailableSeconds: remaining(used),
		ExceedsCapacity:  used+check.ProposedSeconds > domain.ScreenCapacitySeconds,
	}

	cylinder, known := occ.Screens().Cylinder(check.ScreenID)
	if !known {
		return verdict
	}
	verdict.Cylinder = cylinder
	verdict.KnownScreen = true

	_, verdict.Restricted = occ.CategoryConflict(check.Category, check.ClientID, map[int]struct{}{cylinder: {}})

	return verdict
}
