package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type stubLoader struct {
	snap *availability.Snapshot
	err  error
}

func (s stubLoader) Load(ctx context.Context) (*availability.Snapshot, error) {
	return s.snap, s.err
}

type countingMetrics map[string]int

func (m countingMetrics) IncScreenStatus(status string) { m[status]++ }

func testSnapshot() *availability.Snapshot {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return availability.NewSnapshot(
		[]domain.Screen{{ID: "1", Cylinder: 1, Label: "A"}, {ID: "2", Cylinder: 2, Label: "A"}},
		[]domain.Rate{{Code: "R20", DurationSeconds: 20}},
		[]domain.Reservation{{ID: "r1", ClientID: "other", Period: domain.Period{Start: start, End: start.AddDate(0, 0, 7)}}},
		[]domain.LineItem{{ID: "i1", BookingID: "r1", ScreenID: "1", RateCode: "R20", Category: "bancos"}},
		nil,
		nil,
	)
}

func TestExecute(t *testing.T) {
	metrics := countingMetrics{}
	uc := NewUseCase(stubLoader{snap: testSnapshot()}, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:      "me",
		StartDate:     "2024-01-03",
		DurationWeeks: 1,
		Category:      "moda",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", resp.Window.EndString())
	assert.Equal(t, domain.ScreenPartial, resp.Screens["1"].Status)
	assert.Equal(t, 40, resp.Screens["1"].AvailableSeconds)
	assert.Equal(t, domain.ScreenAvailable, resp.Screens["2"].Status)
	assert.Equal(t, 1, metrics["parcial"])
	assert.Equal(t, 1, metrics["disponible"])
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(stubLoader{snap: testSnapshot()}, countingMetrics{}, logger.NewNop())

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"zero weeks", Request{ClientID: "me", StartDate: "2024-01-01", DurationWeeks: 0, Category: "moda"}, ErrInvalidDuration},
		{"53 weeks", Request{ClientID: "me", StartDate: "2024-01-01", DurationWeeks: 53, Category: "moda"}, ErrInvalidDuration},
		{"bad date", Request{ClientID: "me", StartDate: "01/01/2024", DurationWeeks: 1, Category: "moda"}, ErrInvalidInput},
		{"empty category", Request{ClientID: "me", StartDate: "2024-01-01", DurationWeeks: 1}, ErrInvalidInput},
		{"no client", Request{StartDate: "2024-01-01", DurationWeeks: 1, Category: "moda"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_LoaderError(t *testing.T) {
	uc := NewUseCase(stubLoader{err: errors.New("quota")}, countingMetrics{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{ClientID: "me", StartDate: "2024-01-01", DurationWeeks: 1, Category: "moda"})
	assert.ErrorIs(t, err, ErrInternal)
}

func snapshotWithPreReservation() *availability.Snapshot {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return availability.NewSnapshot(
		[]domain.Screen{{ID: "1", Cylinder: 1, Label: "A"}},
		[]domain.Rate{{Code: "R40", DurationSeconds: 40}},
		nil,
		nil,
		[]domain.PreReservation{{ID: "p-other", ClientID: "other", Period: domain.Period{Start: start, End: start.AddDate(0, 0, 7)}}},
		[]domain.LineItem{{ID: "pi1", BookingID: "p-other", ScreenID: "1", RateCode: "R40", Category: "bancos"}},
	)
}

func TestExecute_ExcludeForeignPreReservationIgnored(t *testing.T) {
	uc := NewUseCase(stubLoader{snap: snapshotWithPreReservation()}, countingMetrics{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:                "me",
		StartDate:               "2024-01-01",
		DurationWeeks:           1,
		Category:                "moda",
		ExcludePreReservationID: "p-other",
	})
	require.NoError(t, err)

	// чужая занятость остается в расчете
	assert.Equal(t, domain.ScreenPartial, resp.Screens["1"].Status)
	assert.Equal(t, 20, resp.Screens["1"].AvailableSeconds)
}

func TestExecute_ExcludeOwnPreReservation(t *testing.T) {
	uc := NewUseCase(stubLoader{snap: snapshotWithPreReservation()}, countingMetrics{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:                "other",
		StartDate:               "2024-01-01",
		DurationWeeks:           1,
		Category:                "moda",
		ExcludePreReservationID: "p-other",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ScreenAvailable, resp.Screens["1"].Status)
	assert.Equal(t, 60, resp.Screens["1"].AvailableSeconds)
}
