package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period календарный период бронирования. Обе границы включаются.
type Period struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение двух закрытых интервалов дат
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return !startA.After(endB) && !startB.After(endA)
}

// ParseDate парсит календарную дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// NewPeriod создает период и проверяет порядок границ
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod, start.Format(DateFormat), end.Format(DateFormat))
	}
	return Period{Start: start, End: end}, nil
}

// ParsePeriod парсит обе даты и создает период
func ParsePeriod(start, end string) (Period, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return Period{}, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(startDate, endDate)
}

// PeriodFromWeeks строит период кампании: конец = начало + 7 * weeks дней
func PeriodFromWeeks(start time.Time, weeks int) (Period, error) {
	if weeks < MinCampaignWeeks || weeks > MaxCampaignWeeks {
		return Period{}, fmt.Errorf("%w: %d weeks", ErrInvalidDuration, weeks)
	}
	return Period{Start: start, End: start.AddDate(0, 0, DaysPerWeek*weeks)}, nil
}

// Overlaps проверяет пересечение с другим периодом
func (p Period) Overlaps(other Period) bool {
	return Overlaps(p.Start, p.End, other.Start, other.End)
}

// Weeks возвращает количество полных недель в периоде
func (p Period) Weeks() int {
	days := int(p.End.Sub(p.Start).Hours() / 24)
	return days / DaysPerWeek
}

// StartString дата начала в формате YYYY-MM-DD
func (p Period) StartString() string {
	return p.Start.Format(DateFormat)
}

// EndString дата окончания в формате YYYY-MM-DD
func (p Period) EndString() string {
	return p.End.Format(DateFormat)
}

// String формат для сообщений пользователю: "2024-01-01 a 2024-01-08"
func (p Period) String() string {
	return p.StartString() + " a " + p.EndString()
}
