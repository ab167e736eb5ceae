package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/googlesheets"
)

func decodeScreen(s *googlesheets.Sheet, i int) (domain.Screen, error) {
	cylinder, err := parseInt(s, i, colCylinder)
	if err != nil {
		return domain.Screen{}, err
	}
	return domain.Screen{
		ID:       s.Value(i, colScreenID),
		Cylinder: cylinder,
		Label:    s.Value(i, colLabel),
	}, nil
}

func decodeRate(s *googlesheets.Sheet, i int) (domain.Rate, error) {
	seconds, err := parseInt(s, i, colDuration)
	if err != nil {
		return domain.Rate{}, err
	}
	price, err := parseInt(s, i, colWeeklyPrice)
	if err != nil {
		return domain.Rate{}, err
	}
	return domain.Rate{
		Code:            s.Value(i, colRateCode),
		DurationSeconds: seconds,
		WeeklyPrice:     int64(price),
	}, nil
}

func decodeReservation(s *googlesheets.Sheet, i int) (domain.Reservation, error) {
	period, err := parsePeriod(s, i)
	if err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		ID:        s.Value(i, colReservationID),
		ClientID:  s.Value(i, colClientID),
		Period:    period,
		CreatedAt: parseOptionalDate(s.Value(i, colCreatedAt)),
	}, nil
}

func decodePreReservation(s *googlesheets.Sheet, i int) (domain.PreReservation, error) {
	period, err := parsePeriod(s, i)
	if err != nil {
		return domain.PreReservation{}, err
	}
	status := domain.PreReservationStatus(s.Value(i, colStatus))
	if status == "" {
		status = domain.PreReservationPending
	}
	return domain.PreReservation{
		ID:               s.Value(i, colPreReservationID),
		ClientID:         s.Value(i, colClientID),
		Period:           period,
		Status:           status,
		CreatedAt:        parseOptionalDate(s.Value(i, colCreatedAt)),
		NotificationSent: isYes(s.Value(i, colEmailSent)),
	}, nil
}

func decodeLineItem(s *googlesheets.Sheet, i int, bookingColumn string) domain.LineItem {
	return domain.LineItem{
		ID:        s.Value(i, colItemID),
		BookingID: s.Value(i, bookingColumn),
		ScreenID:  s.Value(i, colScreenID),
		RateCode:  s.Value(i, colRateCode),
		Category:  domain.Category(s.Value(i, colCategory)),
	}
}

func encodePreReservation(p *domain.PreReservation) []string {
	sent := emailSentNo
	if p.NotificationSent {
		sent = emailSentYes
	}
	return []string{
		p.ID,
		p.ClientID,
		p.Period.StartString(),
		p.Period.EndString(),
		string(p.Status),
		p.CreatedAt.Format(domain.DateFormat),
		sent,
	}
}

// encodeLineItem строка листа detalle_prereserva
func encodeLineItem(item domain.LineItem) []string {
	return []string{
		item.ID,
		item.BookingID,
		item.ScreenID,
		item.Category.String(),
		item.RateCode,
	}
}

func parseInt(s *googlesheets.Sheet, i int, column string) (int, error) {
	raw := s.Value(i, column)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s row %d column %s=%q", storage.ErrMalformedRecord,
			s.Name, googlesheets.RowNumber(i), column, raw)
	}
	return n, nil
}

func parsePeriod(s *googlesheets.Sheet, i int) (domain.Period, error) {
	period, err := domain.ParsePeriod(s.Value(i, colStartDate), s.Value(i, colEndDate))
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: %s row %d: %v", storage.ErrMalformedRecord,
			s.Name, googlesheets.RowNumber(i), err)
	}
	return period, nil
}

func parseOptionalDate(raw string) time.Time {
	t, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isYes(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sí", "si", "yes", "true":
		return true
	}
	return false
}

// rowsWhere индексы строк данных, у которых колонка равна value
func rowsWhere(s *googlesheets.Sheet, column, value string) []int {
	var rows []int
	for i := range s.Rows {
		if s.Value(i, column) == value {
			rows = append(rows, i)
		}
	}
	return rows
}

// firstRowWhere индекс первой строки данных, у которой колонка равна value, или -1
func firstRowWhere(s *googlesheets.Sheet, column, value string) int {
	for i := range s.Rows {
		if s.Value(i, column) == value {
			return i
		}
	}
	return -1
}
