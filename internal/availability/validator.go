package availability

import (
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// RejectKind причина отказа валидации
type RejectKind string

const (
	RejectNone     RejectKind = ""
	RejectNotFound RejectKind = "not_found"
	RejectCapacity RejectKind = "capacity"
	RejectCategory RejectKind = "category"
)

// ValidationInput позиции, которыми предлагается заменить позиции пре-резерва
type ValidationInput struct {
	PreReservationID string
	// Window окно проверки. Если nil, берется окно сохраненного пре-резерва.
	Window   *domain.Period
	Items    []domain.ItemSpec
	Category domain.Category
	ClientID string
}

// ValidationResult итог проверки. Отказ - обычный результат, а не ошибка.
type ValidationResult struct {
	Valid    bool
	Reason   string
	Kind     RejectKind
	ScreenID string // экран, превысивший емкость
	Cylinder int    // цилиндр с конфликтом категории
}

// ValidateItems проверяет замену позиций пре-резерва до записи в хранилище.
// Собственные текущие позиции пре-резерва в занятость не входят.
func ValidateItems(snap *Snapshot, in ValidationInput) ValidationResult {
	// 1. Окно пре-резерва
	window, ok := resolveWindow(snap, in)
	if !ok {
		return ValidationResult{Reason: msgPreReservationNotFound, Kind: RejectNotFound}
	}

	// 2. Занятость без самого пре-резерва
	occ := NewOccupancy(snap.WithoutPreReservation(in.PreReservationID), window)

	// 3. Емкость: позиции на одном экране складываются
	proposed := make(map[string]int, len(in.Items))
	cylinders := make(map[int]struct{}, len(in.Items))
	for _, item := range in.Items {
		proposed[item.ScreenID] += occ.Rates().Seconds(item.RateCode)

		verdict := EvaluateScreenConflict(occ, ScreenCheck{
			ScreenID:        item.ScreenID,
			ProposedSeconds: proposed[item.ScreenID],
			Category:        in.Category,
			ClientID:        in.ClientID,
		})
		if verdict.ExceedsCapacity {
			return ValidationResult{
				Reason:   fmt.Sprintf(msgCapacityExceeded, item.ScreenID, domain.ScreenCapacitySeconds),
				Kind:     RejectCapacity,
				ScreenID: item.ScreenID,
			}
		}
		if verdict.KnownScreen {
			cylinders[verdict.Cylinder] = struct{}{}
		}
	}

	// 4. Категория на цилиндрах всех предложенных экранов
	if cylinder, conflict := occ.CategoryConflict(in.Category, in.ClientID, cylinders); conflict {
		return ValidationResult{
			Reason:   fmt.Sprintf(msgCategoryConflict, cylinder),
			Kind:     RejectCategory,
			Cylinder: cylinder,
		}
	}

	return ValidationResult{Valid: true}
}

func resolveWindow(snap *Snapshot, in ValidationInput) (domain.Period, bool) {
	if in.Window != nil {
		return *in.Window, true
	}
	booking, ok := snap.PreReservations.Find(in.PreReservationID)
	if !ok {
		return domain.Period{}, false
	}
	return booking.Period, true
}

// RejectedError отказ валидатора, возвращаемый операциями записи
type RejectedError struct {
	Kind   RejectKind
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("availability: rejected (%s): %s", e.Kind, e.Reason)
}

// Err возвращает nil для успешной проверки и *RejectedError для отказа
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &RejectedError{Kind: r.Kind, Reason: r.Reason}
}
